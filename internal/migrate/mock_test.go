package migrate_test

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/whitemassif/website/internal/cms"
)

type created struct {
	Collection string
	Item       map[string]any
}

type updated struct {
	Collection string
	ID         any
	Patch      map[string]any
}

// mockCMS is a hand-written CMS double. Unset fn fields succeed.
type mockCMS struct {
	serverInfoFn       func(ctx context.Context) (map[string]any, error)
	itemsFn            func(ctx context.Context, collection string, q cms.Query) (any, error)
	createItemFn       func(ctx context.Context, collection string, item map[string]any) error
	updateItemFn       func(ctx context.Context, collection string, id any) error
	deleteItemFn       func(ctx context.Context, collection string, id any) error
	countFn            func(ctx context.Context, collection string) (int, error)
	collectionFn       func(ctx context.Context, name string) (*cms.Collection, error)
	createCollectionFn func(ctx context.Context, def cms.Collection) error
	fieldsFn           func(ctx context.Context, collection string) ([]cms.Field, error)
	createFieldFn      func(ctx context.Context, collection string, f cms.Field) error

	created []created
	updated []updated
	deleted []string
	fields  []string
}

func (m *mockCMS) ServerInfo(ctx context.Context) (map[string]any, error) {
	if m.serverInfoFn != nil {
		return m.serverInfoFn(ctx)
	}
	return map[string]any{"project": map[string]any{"project_name": "test"}}, nil
}

func (m *mockCMS) Items(ctx context.Context, collection string, q cms.Query, dst any) error {
	var rows any = []any{}
	if m.itemsFn != nil {
		var err error
		rows, err = m.itemsFn(ctx, collection, q)
		if err != nil {
			return err
		}
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func (m *mockCMS) CreateItem(ctx context.Context, collection string, item any) (any, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}
	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return nil, err
	}
	if m.createItemFn != nil {
		if err := m.createItemFn(ctx, collection, asMap); err != nil {
			return nil, err
		}
	}
	m.created = append(m.created, created{Collection: collection, Item: asMap})
	return len(m.created), nil
}

func (m *mockCMS) UpdateItem(ctx context.Context, collection string, id any, patch any) error {
	if m.updateItemFn != nil {
		if err := m.updateItemFn(ctx, collection, id); err != nil {
			return err
		}
	}
	raw, _ := json.Marshal(patch)
	var asMap map[string]any
	_ = json.Unmarshal(raw, &asMap)
	m.updated = append(m.updated, updated{Collection: collection, ID: id, Patch: asMap})
	return nil
}

func (m *mockCMS) DeleteItem(ctx context.Context, collection string, id any) error {
	if m.deleteItemFn != nil {
		if err := m.deleteItemFn(ctx, collection, id); err != nil {
			return err
		}
	}
	m.deleted = append(m.deleted, fmt.Sprintf("%s/%v", collection, id))
	return nil
}

func (m *mockCMS) Count(ctx context.Context, collection string, _ cms.Filter) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx, collection)
	}
	return 0, nil
}

func (m *mockCMS) Collection(ctx context.Context, name string) (*cms.Collection, error) {
	if m.collectionFn != nil {
		return m.collectionFn(ctx, name)
	}
	return &cms.Collection{Collection: name}, nil
}

func (m *mockCMS) CreateCollection(ctx context.Context, def cms.Collection) error {
	if m.createCollectionFn != nil {
		return m.createCollectionFn(ctx, def)
	}
	return nil
}

func (m *mockCMS) Fields(ctx context.Context, collection string) ([]cms.Field, error) {
	if m.fieldsFn != nil {
		return m.fieldsFn(ctx, collection)
	}
	return nil, nil
}

func (m *mockCMS) CreateField(ctx context.Context, collection string, f cms.Field) error {
	if m.createFieldFn != nil {
		if err := m.createFieldFn(ctx, collection, f); err != nil {
			return err
		}
	}
	m.fields = append(m.fields, collection+"."+f.Field)
	return nil
}

func (m *mockCMS) createdIn(collection string) []map[string]any {
	var out []map[string]any
	for _, c := range m.created {
		if c.Collection == collection {
			out = append(out, c.Item)
		}
	}
	return out
}
