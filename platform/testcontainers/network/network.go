package network

import (
	"context"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
)

const projectLabel = "project"

// Network is a bridge network shared by the store and service containers of one
// suite run. Containers reach each other by alias on it.
type Network struct {
	network *testcontainers.DockerNetwork
	project string
}

// NewNetwork creates an attachable bridge network labelled with projectName so
// leftovers of aborted runs can be found and pruned.
func NewNetwork(ctx context.Context, projectName string) (*Network, error) {
	net, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{
			projectLabel: projectName,
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "create network for %s", projectName)
	}

	return &Network{network: net, project: projectName}, nil
}

func (n *Network) Name() string {
	return n.network.Name
}

func (n *Network) Project() string { return n.project }

// Remove deletes the network. Containers attached to it must be terminated first.
func (n *Network) Remove(ctx context.Context) error {
	if err := n.network.Remove(ctx); err != nil {
		return errors.Wrapf(err, "remove network %s", n.network.Name)
	}
	return nil
}
