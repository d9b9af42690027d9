package utils

import (
	"log"
	"time"

	"lssctc/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// PracticeResultPayload is the attempt summary pushed to the simulation
// manager after a practice run.
type PracticeResultPayload struct {
	ReferenceID  string    `json:"reference_id"`
	EnrollmentID uint      `json:"enrollment_id"`
	PracticeID   uint      `json:"practice_id"`
	Attempt      int       `json:"attempt"`
	Score        float64   `json:"score"`
	IsPassed     bool      `json:"is_passed"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// NotifySimulator posts a practice result to the configured simulator
// endpoint. Failures are logged and never surfaced to the trainee.
func NotifySimulator(payload PracticeResultPayload) {
	if config.AppConfig.SimulatorURL == "" {
		return
	}

	payload.ReferenceID = uuid.NewString()
	payload.SubmittedAt = time.Now().UTC()

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Api-Key", config.AppConfig.SimulatorAPIKey).
		SetBody(payload).
		Post(config.AppConfig.SimulatorURL + "/practice-results")
	if err != nil {
		log.Printf("[SIMULATOR] Error pushing practice result: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("[SIMULATOR] Practice result push rejected, status %d", resp.StatusCode())
		return
	}

	log.Printf("[SIMULATOR] Pushed practice result %s for enrollment %d", payload.ReferenceID, payload.EnrollmentID)
}
