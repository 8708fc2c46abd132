package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"
)

type runCleanupRequest struct {
	RetentionDays int `json:"retentionDays" binding:"omitempty,min=1"`
}

// TasksController exposes the background task queue.
type TasksController struct {
	queue         TaskQueue
	retentionDays int
}

// NewTasksController creates a TasksController. retentionDays is used when
// a cleanup request does not name one.
func NewTasksController(queue TaskQueue, retentionDays int) *TasksController {
	return &TasksController{queue: queue, retentionDays: retentionDays}
}

// RunAuditCleanup handles POST /api/v1/tasks/audit-cleanup
func (tc *TasksController) RunAuditCleanup(c *gin.Context) {
	var req runCleanupRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, bindingErrorMessage(err), validationDetails(err))
			return
		}
	}

	retention := req.RetentionDays
	if retention == 0 {
		retention = tc.retentionDays
	}

	id, err := tc.queue.EnqueueAuditCleanup(c.Request.Context(), retention)
	if err != nil {
		respondInternalError(c, err, "enqueue audit cleanup")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"taskId":        id,
		"type":          "cleanup_audit_events",
		"retentionDays": retention,
	})
}

// GetTaskStatus handles GET /api/v1/tasks/:id
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.queue.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}
	if status == backlite.TaskStatusNotFound {
		respondNotFound(c, "task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
