package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Error writes an error response. The message is the only detail exposed to
// clients; internals stay in the logs.
func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// Success writes a success envelope with data
func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// Created writes a created response with the stored entity
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, data)
}

// Message writes a status with a human-readable message
func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, map[string]interface{}{
		"success": true,
		"message": message,
	})
}
