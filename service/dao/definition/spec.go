package definition

import (
	"fmt"

	"github.com/viant/nodly/model"
	"github.com/viant/nodly/model/graph"
)

// flowSpec is the YAML document shape of a flow definition.
type flowSpec struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Version     string         `yaml:"version"`
	Root        *componentSpec `yaml:"root"`
}

type componentSpec struct {
	Name         string           `yaml:"name"`
	Type         string           `yaml:"type"`
	Flow         string           `yaml:"flow"`
	When         string           `yaml:"when"`
	AllowPartial *bool            `yaml:"allowPartial"`
	Workers      int              `yaml:"workers"`
	Nodes        []*componentSpec `yaml:"nodes"`
}

func (s *flowSpec) asFlow(URL string) (*model.Flow, error) {
	if s.Root == nil {
		return nil, fmt.Errorf("flow has no root component")
	}
	name := s.Name
	if name == "" && URL != "" {
		name = flowNameFromURL(URL)
	}
	flow := &model.Flow{
		Name:        name,
		Description: s.Description,
		Version:     s.Version,
		Root:        s.Root.asComponent(),
	}
	if URL != "" {
		flow.Source = &model.Source{URL: URL}
	}
	return flow, nil
}

func (s *componentSpec) asComponent() *graph.Component {
	if s == nil {
		return nil
	}
	ret := &graph.Component{
		Name:         s.Name,
		Type:         s.Type,
		Flow:         s.Flow,
		When:         s.When,
		AllowPartial: s.AllowPartial,
		Workers:      s.Workers,
	}
	for _, child := range s.Nodes {
		ret.Nodes = append(ret.Nodes, child.asComponent())
	}
	return ret
}
