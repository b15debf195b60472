// Package repositorytest provides an in-memory ProductStore for tests.
package repositorytest

import (
	"context"
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ynsvrs/practice11/internal/model"
)

// MemoryProductStore keeps documents in insertion order and reproduces the
// store behaviour handlers rely on: ErrNoDocuments on missing reads,
// modified counts that ignore no-op sets, and the immutable _id write error.
type MemoryProductStore struct {
	mu   sync.Mutex
	ids  []primitive.ObjectID
	docs map[primitive.ObjectID]model.Document

	// Err, when set, is returned by every call.
	Err error

	// Calls counts store calls by method name.
	Calls map[string]int
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{
		docs:  make(map[primitive.ObjectID]model.Document),
		Calls: make(map[string]int),
	}
}

func (m *MemoryProductStore) begin(method string) error {
	m.Calls[method]++
	return m.Err
}

func (m *MemoryProductStore) Insert(_ context.Context, p *model.Product) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.begin("Insert"); err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "insert product")
	}

	id := primitive.NewObjectID()
	p.ID = id
	m.ids = append(m.ids, id)
	m.docs[id] = model.Document{
		"_id":      id,
		"name":     p.Name,
		"price":    p.Price,
		"category": p.Category,
	}
	return id, nil
}

func (m *MemoryProductStore) List(_ context.Context) ([]model.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.begin("List"); err != nil {
		return nil, errors.Wrap(err, "find products")
	}

	docs := make([]model.Document, 0, len(m.ids))
	for _, id := range m.ids {
		docs = append(docs, clone(m.docs[id]))
	}
	return docs, nil
}

func (m *MemoryProductStore) GetByID(_ context.Context, id primitive.ObjectID) (model.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.begin("GetByID"); err != nil {
		return nil, errors.Wrap(err, "find product")
	}

	doc, ok := m.docs[id]
	if !ok {
		return nil, errors.Wrapf(mongo.ErrNoDocuments, "find product %s", id.Hex())
	}
	return clone(doc), nil
}

func (m *MemoryProductStore) UpdateByID(_ context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.begin("UpdateByID"); err != nil {
		return 0, errors.Wrap(err, "update product")
	}

	doc, ok := m.docs[id]
	if !ok {
		return 0, nil
	}

	if newID, set := fields["_id"]; set && !reflect.DeepEqual(newID, id) {
		return 0, errors.Wrap(mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{
				Code:    66,
				Message: "Performing an update on the path '_id' would modify the immutable field '_id'",
			}},
		}, "update product")
	}

	changed := false
	for k, v := range fields {
		if current, exists := doc[k]; exists && reflect.DeepEqual(current, v) {
			continue
		}
		doc[k] = v
		changed = true
	}

	if !changed {
		return 0, nil
	}
	return 1, nil
}

func (m *MemoryProductStore) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.begin("DeleteByID"); err != nil {
		return 0, errors.Wrap(err, "delete product")
	}

	if _, ok := m.docs[id]; !ok {
		return 0, nil
	}

	delete(m.docs, id)
	for i, existing := range m.ids {
		if existing == id {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			break
		}
	}
	return 1, nil
}

// Len returns the number of stored documents.
func (m *MemoryProductStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ids)
}

func clone(doc model.Document) model.Document {
	out := make(model.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
