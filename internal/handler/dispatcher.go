package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StartDispatcher starts the notification dispatcher
func (h *Handlers) StartDispatcher(c *gin.Context) {
	if err := h.dispatcher.Start(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

// StopDispatcher stops the notification dispatcher
func (h *Handlers) StopDispatcher(c *gin.Context) {
	if err := h.dispatcher.Stop(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

// RunDispatcherOnce triggers one dispatch cycle immediately
func (h *Handlers) RunDispatcherOnce(c *gin.Context) {
	if err := h.dispatcher.RunOnce(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

// GetDispatcherStatus returns the dispatcher state and schedule
func (h *Handlers) GetDispatcherStatus(c *gin.Context) {
	status := "stopped"
	if h.dispatcher.IsRunning() {
		status = "running"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"next_run": h.dispatcher.GetNextRun(),
		"last_run": h.dispatcher.GetLastRun(),
	})
}
