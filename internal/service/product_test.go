package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynsvrs/practice11/internal/errs"
	"github.com/ynsvrs/practice11/internal/mongoerr"
	"github.com/ynsvrs/practice11/internal/repository/repositorytest"
	"github.com/ynsvrs/practice11/internal/server"
)

func newTestService(t *testing.T) (*ProductService, *repositorytest.MemoryProductStore) {
	t.Helper()

	logger := zerolog.Nop()
	store := repositorytest.NewMemoryProductStore()
	return NewProductService(&server.Server{Logger: &logger}, store), store
}

func assertInvalidID(t *testing.T, err error) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.MessageInvalidID, httpErr.Message)
}

func TestProductService_InvalidID(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	for _, id := range []string{"not-an-id", "zzzzzzzzzzzzzzzzzzzzzzzz", ""} {
		_, err := svc.GetByID(ctx, id)
		assertInvalidID(t, err)

		_, err = svc.UpdateByID(ctx, id, map[string]any{"price": 1})
		assertInvalidID(t, err)

		_, err = svc.DeleteByID(ctx, id)
		assertInvalidID(t, err)
	}

	assert.Empty(t, store.Calls, "invalid ids never reach the store")
}

func TestProductService_CreateAndGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, CreateProductInput{Name: "Lamp", Price: 19.9, Category: "home"})
	require.NoError(t, err)

	doc, err := svc.GetByID(ctx, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Lamp", doc["name"])
	assert.Equal(t, 19.9, doc["price"])
	assert.Equal(t, "home", doc["category"])
}

func TestProductService_EmptyUpdateSkipsStore(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, CreateProductInput{Name: "Lamp", Price: 1, Category: "home"})
	require.NoError(t, err)

	n, err := svc.UpdateByID(ctx, id.Hex(), map[string]any{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
	assert.Zero(t, store.Calls["UpdateByID"])
}

func TestProductService_GetMissing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), "65f1a0c2e4b0a1b2c3d4e5f6")
	assert.Equal(t, mongoerr.NoDocuments, mongoerr.ErrCode(err))
}
