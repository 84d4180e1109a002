package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-memory Store used by tests and credential-less runs.
// It applies the same server-timestamp and merge semantics as Firestore.
type Memory struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]any
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]map[string]any)}
}

func (m *Memory) collection(recordType string) map[string]map[string]any {
	col, ok := m.collections[recordType]
	if !ok {
		col = make(map[string]map[string]any)
		m.collections[recordType] = col
	}
	return col
}

func (m *Memory) Create(_ context.Context, recordType string, fields map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	data := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		data[k] = v
	}
	data[TimestampField] = time.Now()

	m.collection(recordType)[id] = data
	return id, nil
}

func (m *Memory) ListAll(_ context.Context, recordType string, byTimestampDesc bool) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	col := m.collection(recordType)
	docs := make([]Document, 0, len(col))
	for id, data := range col {
		docs = append(docs, Document{ID: id, Fields: copyFields(data)})
	}

	if byTimestampDesc {
		sort.Slice(docs, func(i, j int) bool {
			return docTime(docs[i]).After(docTime(docs[j]))
		})
	} else {
		sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	}
	return docs, nil
}

func (m *Memory) Get(_ context.Context, recordType, id string) (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.collection(recordType)[id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{ID: id, Fields: copyFields(data)}, nil
}

func (m *Memory) SetMerge(_ context.Context, recordType, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	col := m.collection(recordType)
	data, ok := col[id]
	if !ok {
		data = make(map[string]any, len(fields)+1)
		col[id] = data
	}
	for k, v := range fields {
		data[k] = v
	}
	data[TimestampField] = time.Now()
	return nil
}

func (m *Memory) Delete(_ context.Context, recordType, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.collection(recordType), id)
	return nil
}

func copyFields(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

func docTime(d Document) time.Time {
	if ts, ok := d.Fields[TimestampField].(time.Time); ok {
		return ts
	}
	return time.Time{}
}
