package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeItemRepo struct {
	docs        []bson.M
	inserted    bson.M
	updated     bson.M
	matched     int64
	deleted     int64
	findOneErr  error
	updateCalls int
}

func (f *fakeItemRepo) FindAll(_ context.Context) ([]bson.M, error) {
	return f.docs, nil
}

func (f *fakeItemRepo) FindByID(_ context.Context, id primitive.ObjectID) (bson.M, error) {
	if f.findOneErr != nil {
		return nil, f.findOneErr
	}
	return bson.M{"_id": id}, nil
}

func (f *fakeItemRepo) Insert(_ context.Context, doc bson.M) (primitive.ObjectID, error) {
	f.inserted = doc
	return primitive.NewObjectID(), nil
}

func (f *fakeItemRepo) UpdateByID(_ context.Context, _ primitive.ObjectID, fields bson.M) (int64, error) {
	f.updateCalls++
	f.updated = fields
	return f.matched, nil
}

func (f *fakeItemRepo) DeleteByID(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return f.deleted, nil
}

func TestItemCreateRequiresNameAndDescription(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewItemService(repo)

	cases := []map[string]any{
		{},
		{"name": "Lamp"},
		{"description": "A lamp"},
		{"name": "", "description": "A lamp"},
		{"name": "Lamp", "description": nil},
		{"name": "Lamp", "description": false},
		{"name": 0.0, "description": "A lamp"},
	}
	for _, body := range cases {
		_, err := svc.Create(context.Background(), body)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr, "body %+v must be rejected", body)
	}
	assert.Nil(t, repo.inserted)
}

func TestItemCreateKeepsExtraFields(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewItemService(repo)

	_, err := svc.Create(context.Background(), map[string]any{
		"name":        "Lamp",
		"description": "A lamp",
		"color":       "red",
	})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"name": "Lamp", "description": "A lamp", "color": "red"}, repo.inserted)
}

func TestItemReplaceRequiresFullFieldSet(t *testing.T) {
	repo := &fakeItemRepo{matched: 1}
	svc := NewItemService(repo)

	err := svc.Replace(context.Background(), primitive.NewObjectID(), map[string]any{"name": "Lamp"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, repo.updateCalls, "no update may run on validation failure")
}

func TestItemReplaceMergesProvidedFields(t *testing.T) {
	repo := &fakeItemRepo{matched: 1}
	svc := NewItemService(repo)

	err := svc.Replace(context.Background(), primitive.NewObjectID(), map[string]any{
		"name":        "Lamp",
		"description": "A lamp",
		"stock":       3.0,
	})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"name": "Lamp", "description": "A lamp", "stock": 3.0}, repo.updated)
}

func TestItemUpdateRejectsEmptyBody(t *testing.T) {
	repo := &fakeItemRepo{matched: 1}
	svc := NewItemService(repo)

	err := svc.Update(context.Background(), primitive.NewObjectID(), map[string]any{})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Update body cannot be empty", vErr.Message)
	assert.Zero(t, repo.updateCalls)
}

func TestItemUpdateAcceptsAnyFieldSubset(t *testing.T) {
	repo := &fakeItemRepo{matched: 1}
	svc := NewItemService(repo)

	err := svc.Update(context.Background(), primitive.NewObjectID(), map[string]any{"color": "blue"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"color": "blue"}, repo.updated)
}

func TestItemUpdateNotFoundFromMatchedCount(t *testing.T) {
	repo := &fakeItemRepo{matched: 0}
	svc := NewItemService(repo)

	err := svc.Update(context.Background(), primitive.NewObjectID(), map[string]any{"color": "blue"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemDeleteNotFoundFromDeletedCount(t *testing.T) {
	repo := &fakeItemRepo{deleted: 0}
	svc := NewItemService(repo)

	err := svc.Delete(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)

	repo.deleted = 1
	err = svc.Delete(context.Background(), primitive.NewObjectID())
	assert.NoError(t, err)
}

func TestItemGetNotFound(t *testing.T) {
	repo := &fakeItemRepo{findOneErr: mongo.ErrNoDocuments}
	svc := NewItemService(repo)

	_, err := svc.Get(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemListEmpty(t *testing.T) {
	svc := NewItemService(&fakeItemRepo{})

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Len(t, items, 0)
}
