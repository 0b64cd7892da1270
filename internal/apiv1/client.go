// Package apiv1 connects to a session daemon's gRPC API over its Unix
// socket. The wire types live in gen/bondly/v1.
package apiv1

//go:generate protoc -I ../../proto --go_out=../../gen --go_opt=paths=source_relative --go-grpc_out=../../gen --go-grpc_opt=paths=source_relative bondly/v1/bondly.proto

import (
	"fmt"

	bondlyv1 "github.com/bondly/bondly/gen/bondly/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Dial connects to a daemon socket.
func Dial(socketPath string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient("unix://"+socketPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}
	return conn, nil
}

// Client bundles the service clients of one daemon connection.
type Client struct {
	conn         *grpc.ClientConn
	Session      bondlyv1.SessionServiceClient
	Contact      bondlyv1.ContactServiceClient
	Message      bondlyv1.MessageServiceClient
	Notification bondlyv1.NotificationServiceClient
}

// NewClient dials the daemon socket.
func NewClient(socketPath string) (*Client, error) {
	conn, err := Dial(socketPath)
	if err != nil {
		return nil, err
	}
	return FromConn(conn), nil
}

// FromConn wraps an existing connection.
func FromConn(conn *grpc.ClientConn) *Client {
	return &Client{
		conn:         conn,
		Session:      bondlyv1.NewSessionServiceClient(conn),
		Contact:      bondlyv1.NewContactServiceClient(conn),
		Message:      bondlyv1.NewMessageServiceClient(conn),
		Notification: bondlyv1.NewNotificationServiceClient(conn),
	}
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
