// ABOUTME: Tests for upstream dialing, retry policy, and call serialization
// ABOUTME: Uses a real gRPC server on loopback and a counting fake client

package upstream

import (
	"context"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"google.golang.org/grpc"

	"github.com/taskgate/taskgate/proto/taskspb"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// echoTasksService answers every RPC with an empty open task.
type echoTasksService struct {
	taskspb.UnimplementedTasksServiceServer
}

func (s *echoTasksService) GetTask(ctx context.Context, req *taskspb.GetTaskRequest) (*taskspb.TaskResponse, error) {
	return &taskspb.TaskResponse{
		Response: &taskspb.TaskResponse_Task{
			Task: &taskspb.Task{Id: req.GetTaskId(), Status: taskspb.TaskStatus_Open},
		},
	}, nil
}

// startTasksServer runs a real gRPC server on loopback and returns its address.
func startTasksServer(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	srv := grpc.NewServer()
	taskspb.RegisterTasksServiceServer(srv, &echoTasksService{})
	go srv.Serve(ln)
	t.Cleanup(srv.Stop)

	return ln.Addr().String()
}

func TestDial_Succeeds(t *testing.T) {
	addr := startTasksServer(t)

	policy := RetryPolicy{Interval: 10 * time.Millisecond}
	client, err := Dial(context.Background(), addr, policy, testLogger())
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer client.Close()

	resp, err := client.GetTask(context.Background(), &taskspb.GetTaskRequest{TaskId: "task-1"})
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if resp.GetTask().GetId() != "task-1" {
		t.Errorf("task id = %q, want task-1", resp.GetTask().GetId())
	}
}

func TestDial_CappedAttemptsFail(t *testing.T) {
	// Reserve a port and close it so connections are refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	policy := RetryPolicy{Interval: 5 * time.Millisecond, MaxAttempts: 3}
	_, err = Dial(context.Background(), addr, policy, testLogger())
	if err == nil {
		t.Fatal("Dial() should fail when the attempt cap is exhausted")
	}
}

func TestDial_CancelledContext(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Unbounded policy; only the context stops the loop.
	policy := RetryPolicy{Interval: 5 * time.Millisecond}
	_, err = Dial(ctx, addr, policy, testLogger())
	if err == nil {
		t.Fatal("Dial() should fail once the context is cancelled")
	}
}

// countingTasksClient records the maximum number of in-flight calls.
type countingTasksClient struct {
	taskspb.TasksServiceClient

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (c *countingTasksClient) enter() {
	n := c.inFlight.Add(1)
	for {
		max := c.maxInFlight.Load()
		if n <= max || c.maxInFlight.CompareAndSwap(max, n) {
			break
		}
	}
	time.Sleep(time.Millisecond)
}

func (c *countingTasksClient) GetTask(ctx context.Context, req *taskspb.GetTaskRequest, opts ...grpc.CallOption) (*taskspb.TaskResponse, error) {
	c.enter()
	defer c.inFlight.Add(-1)
	return &taskspb.TaskResponse{
		Response: &taskspb.TaskResponse_Task{
			Task: &taskspb.Task{Id: req.GetTaskId()},
		},
	}, nil
}

func TestClient_SerializesCalls(t *testing.T) {
	counting := &countingTasksClient{}
	client := NewWithClient(counting, testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.GetTask(context.Background(), &taskspb.GetTaskRequest{TaskId: "t"}); err != nil {
				t.Errorf("GetTask() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if max := counting.maxInFlight.Load(); max != 1 {
		t.Errorf("max in-flight calls = %d, want 1", max)
	}
}
