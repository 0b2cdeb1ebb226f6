// ABOUTME: Client for the downstream tasks service over a single shared gRPC connection
// ABOUTME: Dials with a constant-interval retry policy and serializes all calls behind one lock

package upstream

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/taskgate/taskgate/proto/taskspb"
)

// connectTimeout bounds how long a single dial attempt waits for the channel
// to become ready before the retry policy schedules the next attempt.
const connectTimeout = 5 * time.Second

// RetryPolicy controls connection establishment.
// MaxAttempts of zero retries until the service is reachable; the gateway is
// useless without its downstream, so the default policy loops forever and
// leaves giving up to the supervisor.
type RetryPolicy struct {
	Interval    time.Duration
	MaxAttempts uint64
}

// backoff converts the policy into a go-retry backoff.
func (p RetryPolicy) backoff() retry.Backoff {
	b := retry.NewConstant(p.Interval)
	if p.MaxAttempts > 0 {
		b = retry.WithMaxRetries(p.MaxAttempts-1, b)
	}
	return b
}

// Client wraps the single long-lived connection to the tasks service.
//
// gRPC connections multiplex natively, but the deployed downstream serves one
// request at a time per caller, so every remote call takes the mutex for the
// duration of the RPC. The lock is never held across anything except the RPC
// itself and is never nested.
type Client struct {
	mu     sync.Mutex
	conn   *grpc.ClientConn
	tasks  taskspb.TasksServiceClient
	logger *slog.Logger
}

// Dial establishes the connection to the tasks service, retrying per the
// policy until the channel is ready. It blocks until success, the policy's
// attempt cap is exhausted, or ctx is cancelled.
func Dial(ctx context.Context, target string, policy RetryPolicy, logger *slog.Logger) (*Client, error) {
	var conn *grpc.ClientConn

	err := retry.Do(ctx, policy.backoff(), func(ctx context.Context) error {
		c, err := dialOnce(ctx, target)
		if err != nil {
			logger.Error("couldn't connect to tasks service, retrying",
				"target", target,
				"error", err,
			)
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to tasks service at %s: %w", target, err)
	}

	logger.Info("connected to tasks service", "target", target)
	return &Client{
		conn:   conn,
		tasks:  taskspb.NewTasksServiceClient(conn),
		logger: logger,
	}, nil
}

// dialOnce creates a channel and waits for it to report READY.
func dialOnce(ctx context.Context, target string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("creating channel: %w", err)
	}

	probeCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return conn, nil
		}
		if state == connectivity.TransientFailure {
			conn.Close()
			return nil, fmt.Errorf("channel in transient failure")
		}
		if !conn.WaitForStateChange(probeCtx, state) {
			conn.Close()
			return nil, fmt.Errorf("timed out waiting for channel readiness (state %s)", state)
		}
	}
}

// NewWithClient wraps an existing tasks service client. Used by tests to
// substitute an in-process downstream.
func NewWithClient(tasks taskspb.TasksServiceClient, logger *slog.Logger) *Client {
	return &Client{
		tasks:  tasks,
		logger: logger,
	}
}

// CreateTask issues a CreateTask RPC on the shared connection.
func (c *Client) CreateTask(ctx context.Context, req *taskspb.CreateTaskRequest) (*taskspb.TaskResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tasks.CreateTask(ctx, req)
}

// GetTask issues a GetTask RPC on the shared connection.
func (c *Client) GetTask(ctx context.Context, req *taskspb.GetTaskRequest) (*taskspb.TaskResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tasks.GetTask(ctx, req)
}

// UpdateTask issues an UpdateTask RPC on the shared connection.
func (c *Client) UpdateTask(ctx context.Context, req *taskspb.UpdateTaskRequest) (*taskspb.TaskResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tasks.UpdateTask(ctx, req)
}

// DeleteTask issues a DeleteTask RPC on the shared connection.
func (c *Client) DeleteTask(ctx context.Context, req *taskspb.DeleteTaskRequest) (*taskspb.TaskResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tasks.DeleteTask(ctx, req)
}

// GetTaskPage issues a GetTaskPage RPC on the shared connection.
func (c *Client) GetTaskPage(ctx context.Context, req *taskspb.GetTaskPageRequest) (*taskspb.TaskPageResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tasks.GetTaskPage(ctx, req)
}

// Close tears down the underlying connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
