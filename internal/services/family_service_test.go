package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"gemquest/internal/models/db_models"
	"gemquest/internal/models/request_models"
	"gemquest/pkg/utils"
)

func setupFamilyTest(t *testing.T) (FamilyServiceInterface, *fakeParentRepo, *fakeChildRepo, *db_models.Parent) {
	t.Helper()

	parentRepo := newFakeParentRepo()
	childRepo := newFakeChildRepo()

	parent := &db_models.Parent{Name: "Dana", Email: "dana@example.com"}
	parent.ID = uuid.New()
	parentRepo.parents[parent.ID.String()] = parent

	return NewFamilyService(parentRepo, childRepo), parentRepo, childRepo, parent
}

func TestUpdateTokenConfig(t *testing.T) {
	svc, _, _, parent := setupFamilyTest(t)

	resp, err := svc.UpdateTokenConfig(context.Background(), request_models.TokenConfigRequest{
		UserID:         parent.ID.String(),
		NumberOfTokens: 5,
		GiftCardAmount: 20,
	})
	if err != nil {
		t.Fatalf("update token config: %v", err)
	}
	if resp.NumberOfTokens != 5 || resp.GiftCardAmount != 20 {
		t.Errorf("config = (%d, %v), want (5, 20)", resp.NumberOfTokens, resp.GiftCardAmount)
	}
}

func TestUpdateTokenConfigUnknownParent(t *testing.T) {
	svc, _, _, _ := setupFamilyTest(t)

	_, err := svc.UpdateTokenConfig(context.Background(), request_models.TokenConfigRequest{
		UserID:         uuid.New().String(),
		NumberOfTokens: 5,
		GiftCardAmount: 20,
	})
	if !errors.Is(err, utils.ErrParentNotFound) {
		t.Errorf("err = %v, want ErrParentNotFound", err)
	}
}

func TestFamilySetupCreatesChildren(t *testing.T) {
	svc, parentRepo, _, parent := setupFamilyTest(t)

	family, err := svc.FamilySetup(context.Background(), request_models.FamilySetupRequest{
		UserID:   parent.ID.String(),
		Pin:      "4321",
		Children: []string{"Max", "Zoe", ""},
	})
	if err != nil {
		t.Fatalf("family setup: %v", err)
	}
	if len(family.Children) != 2 {
		t.Fatalf("children = %d, want 2 (blank names skipped)", len(family.Children))
	}
	for _, c := range family.Children {
		if c.ParentID != parent.ID {
			t.Errorf("child %s linked to %s, want %s", c.Name, c.ParentID, parent.ID)
		}
		if c.Gems != 0 {
			t.Errorf("child %s starts with %d gems, want 0", c.Name, c.Gems)
		}
	}
	stored, _ := parentRepo.FindByID(context.Background(), parent.ID.String())
	if !utils.ComparePin(stored.PinHash, "4321") {
		t.Error("pin was not updated")
	}
}

func TestGetFamily(t *testing.T) {
	svc, _, childRepo, parent := setupFamilyTest(t)

	child := &db_models.Child{Name: "Max", ParentID: parent.ID, Gems: 3}
	child.ID = uuid.New()
	childRepo.children[child.ID.String()] = child

	family, err := svc.GetFamily(context.Background(), parent.ID.String())
	if err != nil {
		t.Fatalf("get family: %v", err)
	}
	if family.Parent.ID != parent.ID.String() {
		t.Errorf("parent id = %q, want %q", family.Parent.ID, parent.ID)
	}
	if len(family.Children) != 1 || family.Children[0].Name != "Max" {
		t.Errorf("children = %+v, want the one child", family.Children)
	}
}

func TestAddChildGems(t *testing.T) {
	svc, _, childRepo, parent := setupFamilyTest(t)

	child := &db_models.Child{Name: "Max", ParentID: parent.ID, Gems: 2}
	child.ID = uuid.New()
	childRepo.children[child.ID.String()] = child

	got, err := svc.AddChildGems(context.Background(), request_models.ChildGemsRequest{
		ChildID:   child.ID.String(),
		GemsToAdd: 3,
	})
	if err != nil {
		t.Fatalf("add gems: %v", err)
	}
	if got.Gems != 5 {
		t.Errorf("gems = %d, want 5", got.Gems)
	}

	// Negative deltas pass straight through, even below zero.
	got, err = svc.AddChildGems(context.Background(), request_models.ChildGemsRequest{
		ChildID:   child.ID.String(),
		GemsToAdd: -7,
	})
	if err != nil {
		t.Fatalf("debit gems: %v", err)
	}
	if got.Gems != -2 {
		t.Errorf("gems = %d, want -2", got.Gems)
	}
}

func TestAddChildGemsUnknownChild(t *testing.T) {
	svc, _, _, _ := setupFamilyTest(t)

	_, err := svc.AddChildGems(context.Background(), request_models.ChildGemsRequest{
		ChildID:   uuid.New().String(),
		GemsToAdd: 1,
	})
	if !errors.Is(err, utils.ErrChildNotFound) {
		t.Errorf("err = %v, want ErrChildNotFound", err)
	}
}
