// ABOUTME: Proxy handlers translating task operations into downstream RPCs
// ABOUTME: Maps task payloads to JSON and collapses downstream failures at the boundary

package gateway

import (
	"fmt"
	"net/http"
	"time"

	"github.com/taskgate/taskgate/internal/auth"
	"github.com/taskgate/taskgate/proto/taskspb"
)

// TaskJSON is the gateway's JSON representation of a downstream task.
type TaskJSON struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// TaskPageJSON is the JSON response for POST /getTaskPage.
type TaskPageJSON struct {
	Tasks []TaskJSON `json:"tasks"`
}

// CreateTaskRequest is the JSON request body for POST /createTask.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GetTaskRequest is the JSON request body for POST /getTask.
type GetTaskRequest struct {
	TaskID string `json:"task_id"`
}

// UpdateTaskRequest is the JSON request body for POST /updateTask.
type UpdateTaskRequest struct {
	TaskID         string  `json:"task_id"`
	NewTitle       *string `json:"new_title"`
	NewDescription *string `json:"new_description"`
}

// DeleteTaskRequest is the JSON request body for POST /deleteTask.
type DeleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

// GetTaskPageRequest is the JSON request body for POST /getTaskPage.
type GetTaskPageRequest struct {
	StartID  int32 `json:"start_id"`
	PageSize int32 `json:"page_size"`
}

// taskToJSON translates a downstream task payload: the status code becomes
// its canonical name, the timestamp a textual representation, the remaining
// fields pass through verbatim.
func taskToJSON(t *taskspb.Task) TaskJSON {
	return TaskJSON{
		ID:          t.GetId(),
		CreatedAt:   t.GetCreatedAt().AsTime().UTC().Format(time.RFC3339),
		Title:       t.GetTitle(),
		Description: t.GetDescription(),
		Status:      t.GetStatus().String(),
	}
}

// writeTaskResponse maps a downstream task RPC result onto the HTTP response.
// Transport failures and downstream-reported errors both collapse to
// IncorrectRequest; the downstream code and message are logged first and
// never forwarded.
func (g *Gateway) writeTaskResponse(w http.ResponseWriter, resp *taskspb.TaskResponse, err error) {
	if err != nil {
		g.writeError(w, ErrIncorrectRequest, fmt.Errorf("tasks service call: %w", err))
		return
	}
	switch r := resp.GetResponse().(type) {
	case *taskspb.TaskResponse_Task:
		g.writeJSON(w, taskToJSON(r.Task))
	case *taskspb.TaskResponse_Error:
		g.writeError(w, ErrIncorrectRequest,
			fmt.Errorf("tasks service error %d: %s", r.Error.GetCode(), r.Error.GetMessage()))
	default:
		g.writeError(w, ErrIncorrectRequest, fmt.Errorf("tasks service returned empty response"))
	}
}

// handleCreateTask handles POST /createTask requests.
func (g *Gateway) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	g.logger.Info("handling create task request")

	var req CreateTaskRequest
	if err := decodeStrict(r.Body, &req); err != nil {
		g.writeError(w, ErrIncorrectRequest, err)
		return
	}

	identity := auth.MustFromContext(r.Context())
	resp, err := g.upstream.CreateTask(r.Context(), &taskspb.CreateTaskRequest{
		UserId:      identity.Username,
		Title:       req.Title,
		Description: req.Description,
	})
	g.writeTaskResponse(w, resp, err)
}

// handleGetTask handles POST /getTask requests.
func (g *Gateway) handleGetTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	g.logger.Info("handling get task request")

	var req GetTaskRequest
	if err := decodeStrict(r.Body, &req); err != nil {
		g.writeError(w, ErrIncorrectRequest, err)
		return
	}

	identity := auth.MustFromContext(r.Context())
	resp, err := g.upstream.GetTask(r.Context(), &taskspb.GetTaskRequest{
		UserId: identity.Username,
		TaskId: req.TaskID,
	})
	g.writeTaskResponse(w, resp, err)
}

// handleUpdateTask handles POST /updateTask requests.
func (g *Gateway) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	g.logger.Info("handling update task request")

	var req UpdateTaskRequest
	if err := decodeStrict(r.Body, &req); err != nil {
		g.writeError(w, ErrIncorrectRequest, err)
		return
	}

	identity := auth.MustFromContext(r.Context())
	resp, err := g.upstream.UpdateTask(r.Context(), &taskspb.UpdateTaskRequest{
		UserId:         identity.Username,
		TaskId:         req.TaskID,
		NewTitle:       req.NewTitle,
		NewDescription: req.NewDescription,
	})
	g.writeTaskResponse(w, resp, err)
}

// handleDeleteTask handles POST /deleteTask requests.
func (g *Gateway) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	g.logger.Info("handling delete task request")

	var req DeleteTaskRequest
	if err := decodeStrict(r.Body, &req); err != nil {
		g.writeError(w, ErrIncorrectRequest, err)
		return
	}

	identity := auth.MustFromContext(r.Context())
	resp, err := g.upstream.DeleteTask(r.Context(), &taskspb.DeleteTaskRequest{
		UserId: identity.Username,
		TaskId: req.TaskID,
	})
	g.writeTaskResponse(w, resp, err)
}

// handleGetTaskPage handles POST /getTaskPage requests.
// Downstream ordering is preserved element-wise; an empty page yields an
// empty tasks array, not null.
func (g *Gateway) handleGetTaskPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	g.logger.Info("handling get task page request")

	var req GetTaskPageRequest
	if err := decodeStrict(r.Body, &req); err != nil {
		g.writeError(w, ErrIncorrectRequest, err)
		return
	}

	identity := auth.MustFromContext(r.Context())
	resp, err := g.upstream.GetTaskPage(r.Context(), &taskspb.GetTaskPageRequest{
		UserId:   identity.Username,
		StartId:  req.StartID,
		PageSize: req.PageSize,
	})
	if err != nil {
		g.writeError(w, ErrIncorrectRequest, fmt.Errorf("tasks service call: %w", err))
		return
	}

	switch p := resp.GetResponse().(type) {
	case *taskspb.TaskPageResponse_TaskPage:
		page := TaskPageJSON{Tasks: make([]TaskJSON, 0, len(p.TaskPage.GetTasks()))}
		for _, t := range p.TaskPage.GetTasks() {
			page.Tasks = append(page.Tasks, taskToJSON(t))
		}
		g.writeJSON(w, page)
	case *taskspb.TaskPageResponse_Error:
		g.writeError(w, ErrIncorrectRequest,
			fmt.Errorf("tasks service error %d: %s", p.Error.GetCode(), p.Error.GetMessage()))
	default:
		g.writeError(w, ErrIncorrectRequest, fmt.Errorf("tasks service returned empty response"))
	}
}
