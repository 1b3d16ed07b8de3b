package names

import (
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/status-im/status-names/params"
)

// Service exposes the names API over RPC.
type Service struct {
	api *API
}

func NewService(api *API) *Service {
	return &Service{api: api}
}

// APIs returns list of available RPC APIs.
func (s *Service) APIs() []rpc.API {
	return []rpc.API{
		{
			Namespace: "names",
			Version:   params.Version,
			Service:   NewPublicAPI(s.api),
		},
	}
}

// Start a service.
func (s *Service) Start() error {
	return nil
}

// Stop a service.
func (s *Service) Stop() error {
	return nil
}

// NewRPCServer registers the APIs of services on a new RPC server.
func NewRPCServer(services ...*Service) (*rpc.Server, error) {
	server := rpc.NewServer()
	for _, service := range services {
		for _, api := range service.APIs() {
			if err := server.RegisterName(api.Namespace, api.Service); err != nil {
				server.Stop()
				return nil, err
			}
		}
	}
	return server, nil
}
