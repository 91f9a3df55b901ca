package pets

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	mu   sync.Mutex
	pets []Pet
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pets = append(r.pets, p)
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.pets {
		if r.pets[i].ID == p.ID {
			r.pets[i] = p
			return nil
		}
	}
	return ErrNotFound
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.pets {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Pet, 0)
	for _, p := range r.pets {
		if p.UserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) snapshot() []Pet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Pet(nil), r.pets...)
}

type staticOwner struct{ id string }

func (o staticOwner) CurrentUserID(ctx context.Context) (string, bool) {
	return o.id, o.id != ""
}

type failingRepo struct{ testRepo }

func (r *failingRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return nil, errors.New("storage unavailable")
}

// -------------------------
// Tests
// -------------------------

func TestAddPet_WithoutUser_Unauthenticated(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, staticOwner{}, nil)

	_, err := svc.AddPet(context.Background(), NewPet{Name: "Rex"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, repo.snapshot())
}

func TestAddPet_NilResolver_Unauthenticated(t *testing.T) {
	svc := NewService(&testRepo{}, nil, nil)

	_, err := svc.AddPet(context.Background(), NewPet{Name: "Rex"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAddPet_AssignsIDAndOwner(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{}
	svc := NewService(repo, staticOwner{id: "u1"}, nil)

	a, err := svc.AddPet(ctx, NewPet{Name: " Rex ", Breed: "Labrador", Age: 3, Weight: 28.5, BirthDate: "2022-01-10"})
	require.NoError(t, err)
	b, err := svc.AddPet(ctx, NewPet{Name: "Mel"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "u1", a.UserID)
	assert.Equal(t, "Rex", a.Name)

	got := svc.GetUserPets(ctx)
	require.Len(t, got, 2)

	count := 0
	for _, p := range got {
		if p.ID == a.ID {
			count++
			assert.Equal(t, a, p)
		}
	}
	assert.Equal(t, 1, count)
}

func TestAddPet_InvalidInput(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, staticOwner{id: "u1"}, nil)

	for _, in := range []NewPet{
		{Name: "   "},
		{Name: "Rex", Age: -1},
		{Name: "Rex", Weight: -0.5},
	} {
		_, err := svc.AddPet(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", in)
	}
	assert.Empty(t, repo.snapshot())
}

func TestGetUserPets_FiltersByOwner(t *testing.T) {
	repo := &testRepo{pets: []Pet{
		{ID: "p1", UserID: "u1", Name: "Rex"},
		{ID: "p2", UserID: "u2", Name: "Mel"},
		{ID: "p3", UserID: "u1", Name: "Tobi"},
	}}
	svc := NewService(repo, staticOwner{id: "u1"}, nil)

	got := svc.GetUserPets(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p3", got[1].ID)
}

func TestGetUserPets_NoUserOrStorage_Empty(t *testing.T) {
	repo := &testRepo{pets: []Pet{{ID: "p1", UserID: "u1"}}}

	assert.Empty(t, NewService(repo, staticOwner{}, nil).GetUserPets(context.Background()))

	got := NewService(&failingRepo{}, staticOwner{id: "u1"}, nil).GetUserPets(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUpdatePet_AcrossCollection_KeepsIDAndOwner(t *testing.T) {
	repo := &testRepo{pets: []Pet{
		{ID: "p1", UserID: "u2", Name: "Mel", Age: 2, Weight: 4},
	}}
	// el usuario actual no es el owner: update no está acotado por owner
	svc := NewService(repo, staticOwner{id: "u1"}, nil)

	name := "Mel Maria"
	weight := 4.8
	got, ok, err := svc.UpdatePet(context.Background(), "p1", Patch{Name: &name, Weight: &weight})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, "u2", got.UserID)
	assert.Equal(t, "Mel Maria", got.Name)
	assert.Equal(t, 4.8, got.Weight)
	assert.Equal(t, 2, got.Age)
	assert.Equal(t, []Pet{got}, repo.snapshot())
}

func TestUpdatePet_UnknownID_NoOp(t *testing.T) {
	before := []Pet{{ID: "p1", UserID: "u1", Name: "Rex"}}
	repo := &testRepo{pets: append([]Pet(nil), before...)}
	svc := NewService(repo, staticOwner{id: "u1"}, nil)

	name := "Other"
	_, ok, err := svc.UpdatePet(context.Background(), "nope", Patch{Name: &name})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, repo.snapshot())
}

func TestUpdatePet_InvalidPatch(t *testing.T) {
	repo := &testRepo{pets: []Pet{{ID: "p1", UserID: "u1", Name: "Rex"}}}
	svc := NewService(repo, staticOwner{id: "u1"}, nil)

	empty := " "
	_, _, err := svc.UpdatePet(context.Background(), "p1", Patch{Name: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)

	age := -2
	_, _, err = svc.UpdatePet(context.Background(), "p1", Patch{Age: &age})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, "Rex", repo.snapshot()[0].Name)
}

func TestUpdatePet_TrimsStrings(t *testing.T) {
	repo := &testRepo{pets: []Pet{{ID: "p1", UserID: "u1", Name: "Rex", Breed: "Vira-lata"}}}
	svc := NewService(repo, staticOwner{id: "u1"}, nil)

	name := " Max "
	breed := "  Labrador\t"
	got, ok, err := svc.UpdatePet(context.Background(), "p1", Patch{Name: &name, Breed: &breed})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "Max", got.Name)
	assert.Equal(t, "Labrador", got.Breed)
	assert.Equal(t, "Max", repo.snapshot()[0].Name)
	// el patch del caller no se modifica
	assert.Equal(t, " Max ", name)
}
