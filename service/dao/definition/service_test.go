package definition

import (
	"context"
	"embed"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
	"github.com/viant/nodly/model"
	"github.com/viant/nodly/model/graph"
	"github.com/viant/nodly/service/dao"
	"github.com/viant/nodly/service/meta"
)

//go:embed testdata/*
var testFS embed.FS

func newTestService() *Service {
	return New(WithMetaService(meta.New(afs.New(), "embed:///testdata", &testFS)))
}

func TestService_Load(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	flow, err := service.Load(ctx, "checkout")
	assert.Nil(t, err)
	assert.Equal(t, "checkout", flow.Name)
	assert.Equal(t, "1.0", flow.Version)
	if assert.NotNil(t, flow.Root) {
		assert.Equal(t, "pipeline", flow.Root.Type)
		if assert.Len(t, flow.Root.Nodes, 3) {
			assert.Equal(t, "reserve", flow.Root.Nodes[0].Name)
			assert.Equal(t, "hasBalance", flow.Root.Nodes[1].When)
			assert.True(t, flow.Root.Nodes[2].IsFlow())
		}
	}
	assert.True(t, service.Exists("checkout"))
}

func TestService_Load_NameFromURL(t *testing.T) {
	service := newTestService()
	flow, err := service.Load(context.Background(), "notify.yaml")
	assert.Nil(t, err)
	assert.Equal(t, "notify", flow.Name, "an unnamed definition takes its name from the URL")
	assert.Equal(t, 2, flow.Root.Workers)
	if assert.NotNil(t, flow.Root.AllowPartial) {
		assert.True(t, *flow.Root.AllowPartial)
	}
}

func TestService_Load_Errors(t *testing.T) {
	service := newTestService()
	_, err := service.Load(context.Background(), "absent")
	assert.NotNil(t, err)

	_, err = service.Load(context.Background(), "broken")
	assert.ErrorContains(t, err, "root")
}

func TestService_DecodeYAML(t *testing.T) {
	service := newTestService()
	flow, err := service.DecodeYAML([]byte(`
name: inline
root:
  name: main
  type: pipeline
  nodes:
    - name: step
      type: stock
`))
	assert.Nil(t, err)
	assert.Equal(t, "inline", flow.Name)
	assert.True(t, service.Exists("inline"))
}

func TestService_UpsertAndLookup(t *testing.T) {
	service := New()
	assert.Equal(t, dao.ErrNilEntity, service.Upsert(nil))
	assert.Equal(t, dao.ErrInvalidName, service.Upsert(&model.Flow{}))

	flow := &model.Flow{Name: "inline", Root: &graph.Component{Name: "main", Type: "pipeline"}}
	assert.Nil(t, service.Upsert(flow))

	found, err := service.Lookup("inline")
	assert.Nil(t, err)
	assert.Same(t, flow, found)

	_, err = service.Lookup("absent")
	assert.True(t, errors.Is(err, dao.ErrNotFound))

	service.Delete("inline")
	assert.False(t, service.Exists("inline"))
}
