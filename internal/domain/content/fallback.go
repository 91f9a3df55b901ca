package content

import "time"

// FallbackTestimonials es el set embebido usado cuando la fuente remota
// no está configurada, falla o viene vacía. Siempre devuelve una copia nueva.
func FallbackTestimonials(now time.Time) []Testimonial {
	return []Testimonial{
		{
			ID:        "1",
			Name:      "Maria Silva",
			Location:  "São Paulo, SP",
			Text:      "O PetCare transformou a relação com minha Golden Retriever! As lições de adestramento são incríveis e os lembretes de vacina salvaram minha vida.",
			Rating:    5,
			Plan:      "Premium",
			CreatedAt: now,
		},
		{
			ID:        "2",
			Name:      "João Santos",
			Location:  "Rio de Janeiro, RJ",
			Text:      "Finalmente um app que entende as necessidades do meu Bulldog. A calculadora de alimentação é perfeita e o suporte é excepcional!",
			Rating:    5,
			Plan:      "Pro",
			CreatedAt: now,
		},
		{
			ID:        "3",
			Name:      "Ana Costa",
			Location:  "Belo Horizonte, MG",
			Text:      "Meu Poodle nunca foi tão bem cuidado! O sistema de metas diárias me motiva todos os dias. Recomendo para todos os tutores!",
			Rating:    5,
			Plan:      "Básico",
			CreatedAt: now,
		},
		{
			ID:        "4",
			Name:      "Carlos Oliveira",
			Location:  "Curitiba, PR",
			Text:      "Incrível como o app me ajudou a organizar toda a rotina do meu Labrador. As notificações são pontuais e o conteúdo é de qualidade!",
			Rating:    5,
			Plan:      "Premium",
			CreatedAt: now,
		},
	}
}

// FallbackPlans: Básico, Premium (popular), Pro.
func FallbackPlans(now time.Time) []Plan {
	return []Plan{
		{
			ID:          "1",
			Name:        "Básico",
			Price:       "R$ 19,90",
			Period:      "/mês",
			Description: "Perfeito para começar",
			Features: []string{
				"Adestramento básico (10 lições)",
				"Calculadora de alimentação",
				"Carteira de vacinas",
				"Suporte por email",
			},
			Link:      "https://mpago.la/2prynuq",
			Popular:   false,
			CreatedAt: now,
		},
		{
			ID:          "2",
			Name:        "Premium",
			Price:       "R$ 39,90",
			Period:      "/mês",
			Description: "Mais popular entre tutores",
			Features: []string{
				"Adestramento completo (50+ lições)",
				"Calculadora avançada com IA",
				"Lembretes inteligentes",
				"Consultas veterinárias online",
				"Suporte prioritário",
				"Relatórios detalhados",
			},
			Link:      "https://mpago.la/2yTup7L",
			Popular:   true,
			CreatedAt: now,
		},
		{
			ID:          "3",
			Name:        "Pro",
			Price:       "R$ 69,90",
			Period:      "/mês",
			Description: "Para tutores profissionais",
			Features: []string{
				"Tudo do Premium +",
				"Adestramento personalizado",
				"Múltiplos pets",
				"Consultoria especializada",
				"Acesso antecipado a novidades",
				"Suporte 24/7 via WhatsApp",
			},
			Link:      "https://mpago.la/26ciiKH",
			Popular:   false,
			CreatedAt: now,
		},
	}
}
