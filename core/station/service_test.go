package station

import (
	"context"
	"errors"
	"testing"

	"localfm/core/library"
	"localfm/model"
	"localfm/repository"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(repository.NewStationRepository(newTestStore(t)))
}

func TestServiceCreateDerivesIDFromName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	st := &model.RadioStation{Name: "Morning Drive"}
	if err := svc.Create(ctx, st); err != nil {
		t.Fatalf("Create: %v", err)
	}
	want := "st" + library.HashID("Morning Drive")
	if st.ID != want {
		t.Errorf("ID = %s, want %s", st.ID, want)
	}
	if st.CreatedAt.IsZero() || st.UpdatedAt.IsZero() {
		t.Error("timestamps not stamped")
	}
}

func TestServiceCreateRejectsEmptyName(t *testing.T) {
	svc := newTestService(t)
	if err := svc.Create(context.Background(), &model.RadioStation{}); err == nil {
		t.Fatal("want error for empty name")
	}
}

func TestServiceCreateTemporary(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	track := &model.LibraryEntry{
		ID: "1", Title: "So What", Artist: "Miles Davis",
		Album: "Kind of Blue", Genre: "Jazz", Year: 1959,
	}
	st, err := svc.CreateTemporary(ctx, track)
	if err != nil {
		t.Fatalf("CreateTemporary: %v", err)
	}
	if !st.IsTemporary {
		t.Error("station not marked temporary")
	}
	if st.ID == "st"+library.HashID(st.Name) {
		t.Error("temporary station should not use the name hash id")
	}
	var albumWeight float64
	for _, c := range st.Criteria {
		if c.Attribute == model.AttrAlbum {
			albumWeight = c.Weight
		}
	}
	if albumWeight != 0.5 {
		t.Errorf("album weight = %v, want de-emphasized 0.5", albumWeight)
	}

	// Temporary stations are still persisted under the same schema.
	got, err := svc.GetByID(ctx, st.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.IsTemporary {
		t.Error("persisted station lost temporary flag")
	}
}

func TestServiceCreateFromSeeds(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seeds := []*model.LibraryEntry{
		{Artist: "Nirvana", Genre: "grunge", Year: 1991},
		{Artist: "Nirvana", Genre: "grunge", Year: 1993},
	}
	st, err := svc.CreateFromSeeds(ctx, "Seattle Sound", seeds, nil)
	if err != nil {
		t.Fatalf("CreateFromSeeds: %v", err)
	}
	if len(st.Criteria) == 0 {
		t.Fatal("no criteria derived")
	}

	if _, err := svc.CreateFromSeeds(ctx, "Empty", nil, nil); err == nil {
		t.Error("want error for no seeds")
	}
}

func TestServiceUpdateNotFoundPassthrough(t *testing.T) {
	svc := newTestService(t)
	fav := true
	_, err := svc.Update(context.Background(), "missing", model.StationPatch{IsFavorite: &fav})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestServiceMarkPlayed(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	st := &model.RadioStation{Name: "Late Night"}
	if err := svc.Create(ctx, st); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.MarkPlayed(ctx, st.ID); err != nil {
		t.Fatalf("MarkPlayed: %v", err)
	}
	got, err := svc.GetByID(ctx, st.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.LastPlayed == nil {
		t.Error("LastPlayed not set")
	}
}
