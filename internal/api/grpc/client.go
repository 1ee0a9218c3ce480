package grpc

import (
	"context"

	grpc "google.golang.org/grpc"
)

// Client calls Contributors service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates new Client on given connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// List returns contributors of given repository.
func (c *Client) List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListReply, error) {
	out := new(ListReply)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := c.cc.Invoke(ctx, listMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
