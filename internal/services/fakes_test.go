package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gemquest/internal/models/db_models"
)

// In-memory repository fakes. They mirror the gorm repositories'
// contract: (nil, nil) on not-found, gorm.ErrRecordNotFound from
// deletes and set-default on missing rows.

type fakeParentRepo struct {
	parents map[string]*db_models.Parent
}

func newFakeParentRepo() *fakeParentRepo {
	return &fakeParentRepo{parents: make(map[string]*db_models.Parent)}
}

func (f *fakeParentRepo) Insert(ctx context.Context, parent *db_models.Parent) error {
	if parent.ID == uuid.Nil {
		parent.ID = uuid.New()
	}
	f.parents[parent.ID.String()] = parent
	return nil
}

func (f *fakeParentRepo) FindByID(ctx context.Context, id string) (*db_models.Parent, error) {
	p, ok := f.parents[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeParentRepo) FindByEmail(ctx context.Context, email string) (*db_models.Parent, error) {
	for _, p := range f.parents {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeParentRepo) Update(ctx context.Context, parent *db_models.Parent) error {
	cp := *parent
	f.parents[parent.ID.String()] = &cp
	return nil
}

func (f *fakeParentRepo) UpdateTokenConfig(ctx context.Context, id string, numberOfTokens int, giftCardAmount float64) (*db_models.Parent, error) {
	p, ok := f.parents[id]
	if !ok {
		return nil, nil
	}
	p.NumberOfTokens = numberOfTokens
	p.GiftCardAmount = giftCardAmount
	cp := *p
	return &cp, nil
}

type fakeChildRepo struct {
	children map[string]*db_models.Child
}

func newFakeChildRepo() *fakeChildRepo {
	return &fakeChildRepo{children: make(map[string]*db_models.Child)}
}

func (f *fakeChildRepo) Insert(ctx context.Context, child *db_models.Child) error {
	if child.ID == uuid.Nil {
		child.ID = uuid.New()
	}
	f.children[child.ID.String()] = child
	return nil
}

func (f *fakeChildRepo) FindByID(ctx context.Context, id string) (*db_models.Child, error) {
	c, ok := f.children[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeChildRepo) ListByParent(ctx context.Context, parentID string) ([]db_models.Child, error) {
	var out []db_models.Child
	for _, c := range f.children {
		if c.ParentID.String() == parentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeChildRepo) AddGems(ctx context.Context, childID string, delta int) (*db_models.Child, error) {
	c, ok := f.children[childID]
	if !ok {
		return nil, nil
	}
	c.Gems += delta
	cp := *c
	return &cp, nil
}

type fakeChoreRepo struct {
	chores   map[string]*db_models.Chore
	children *fakeChildRepo
}

func newFakeChoreRepo(children *fakeChildRepo) *fakeChoreRepo {
	return &fakeChoreRepo{
		chores:   make(map[string]*db_models.Chore),
		children: children,
	}
}

func (f *fakeChoreRepo) Insert(ctx context.Context, chore *db_models.Chore) error {
	if chore.ID == uuid.Nil {
		chore.ID = uuid.New()
	}
	f.chores[chore.ID.String()] = chore
	return nil
}

func (f *fakeChoreRepo) FindByID(ctx context.Context, id string) (*db_models.Chore, error) {
	c, ok := f.chores[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeChoreRepo) ListByChild(ctx context.Context, childID string) ([]db_models.Chore, error) {
	var out []db_models.Chore
	for _, c := range f.chores {
		if c.ChildID.String() == childID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeChoreRepo) ListByParent(ctx context.Context, parentID string) ([]db_models.Chore, error) {
	var out []db_models.Chore
	for _, c := range f.chores {
		if c.ParentID.String() == parentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func applyChoreFields(chore *db_models.Chore, fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "name":
			chore.Name = v.(string)
		case "description":
			chore.Description = v.(string)
		case "location":
			chore.Location = v.(string)
		case "gems":
			chore.Gems = v.(int)
		case "status":
			chore.Status = v.(db_models.ChoreStatus)
		}
	}
}

func (f *fakeChoreRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*db_models.Chore, error) {
	c, ok := f.chores[id]
	if !ok {
		return nil, nil
	}
	applyChoreFields(c, fields)
	cp := *c
	return &cp, nil
}

func (f *fakeChoreRepo) CompleteTx(ctx context.Context, id string, fields map[string]interface{}) (*db_models.Chore, error) {
	c, ok := f.chores[id]
	if !ok {
		return nil, nil
	}
	fields["status"] = db_models.ChoreStatusCompleted
	applyChoreFields(c, fields)
	if child, ok := f.children.children[c.ChildID.String()]; ok {
		child.Gems += c.Gems
	}
	cp := *c
	return &cp, nil
}

func (f *fakeChoreRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.chores[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.chores, id)
	return nil
}

type fakeMethodRepo struct {
	methods map[string]*db_models.PaymentMethod
}

func newFakeMethodRepo() *fakeMethodRepo {
	return &fakeMethodRepo{methods: make(map[string]*db_models.PaymentMethod)}
}

func (f *fakeMethodRepo) Insert(ctx context.Context, method *db_models.PaymentMethod) error {
	if method.ID == uuid.Nil {
		method.ID = uuid.New()
	}
	hasDefault := false
	for _, m := range f.methods {
		if m.UserID == method.UserID && m.IsDefault {
			hasDefault = true
		}
	}
	if !hasDefault {
		method.IsDefault = true
	}
	f.methods[method.ID.String()] = method
	return nil
}

func (f *fakeMethodRepo) FindByID(ctx context.Context, id string) (*db_models.PaymentMethod, error) {
	m, ok := f.methods[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMethodRepo) ListByUser(ctx context.Context, userID string) ([]db_models.PaymentMethod, error) {
	var out []db_models.PaymentMethod
	for _, m := range f.methods {
		if m.UserID.String() == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMethodRepo) FindDefaultByUser(ctx context.Context, userID string) (*db_models.PaymentMethod, error) {
	for _, m := range f.methods {
		if m.UserID.String() == userID && m.IsDefault {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMethodRepo) SetDefault(ctx context.Context, userID, methodID string) error {
	target, ok := f.methods[methodID]
	if !ok || target.UserID.String() != userID {
		return gorm.ErrRecordNotFound
	}
	for _, m := range f.methods {
		if m.UserID.String() == userID {
			m.IsDefault = false
		}
	}
	target.IsDefault = true
	return nil
}

func (f *fakeMethodRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.methods[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.methods, id)
	return nil
}

type fakeTxnRepo struct {
	txns     map[string]*db_models.PaymentTransaction
	children *fakeChildRepo
}

func newFakeTxnRepo(children *fakeChildRepo) *fakeTxnRepo {
	return &fakeTxnRepo{
		txns:     make(map[string]*db_models.PaymentTransaction),
		children: children,
	}
}

func (f *fakeTxnRepo) Insert(ctx context.Context, txn *db_models.PaymentTransaction) error {
	if txn.IdempotencyKey != "" {
		for _, t := range f.txns {
			if t.IdempotencyKey == txn.IdempotencyKey {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	f.txns[txn.ID.String()] = txn
	return nil
}

func (f *fakeTxnRepo) FindByID(ctx context.Context, id string) (*db_models.PaymentTransaction, error) {
	t, ok := f.txns[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTxnRepo) ListByUser(ctx context.Context, userID string) ([]db_models.PaymentTransaction, error) {
	var out []db_models.PaymentTransaction
	for _, t := range f.txns {
		if t.UserID.String() == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTxnRepo) FindByIdempotencyKey(ctx context.Context, userID, key string) (*db_models.PaymentTransaction, error) {
	for _, t := range f.txns {
		if t.UserID.String() == userID && t.IdempotencyKey == key {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTxnRepo) FinalizeSuccess(ctx context.Context, txnID string, childID string, externalID string, response datatypes.JSON) (*db_models.PaymentTransaction, error) {
	t, ok := f.txns[txnID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	t.Status = db_models.TxnStatusCompleted
	t.ExternalTransactionID = externalID
	t.ProviderResponse = response
	if childID != "" {
		if child, ok := f.children.children[childID]; ok {
			child.Gems = 0
		}
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTxnRepo) MarkFailed(ctx context.Context, txnID string, response datatypes.JSON) (*db_models.PaymentTransaction, error) {
	t, ok := f.txns[txnID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	t.Status = db_models.TxnStatusFailed
	t.ProviderResponse = response
	cp := *t
	return &cp, nil
}
