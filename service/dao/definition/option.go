package definition

import (
	"github.com/viant/nodly/service/meta"
)

// Option customises the definition service.
type Option func(s *Service)

// WithMetaService sets the storage loader definitions are read through.
func WithMetaService(metaService *meta.Service) Option {
	return func(s *Service) { s.metaService = metaService }
}
