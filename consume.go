package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"github.com/Rizqah/ATS-Prototype/internal/database"
	"github.com/streadway/amqp"
)

// retry retries a function up to `attempts` times with exponential backoff
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		wait := time.Duration(500*(i+1)) * time.Millisecond
		time.Sleep(wait)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

type sessionPipeline func(Session, *WorkerConfig) error

// pipelineForMode resolves a session mode to its pipeline. Unknown modes fall
// back to screen, which matches what producers sent before modes existed.
func pipelineForMode(mode string) sessionPipeline {
	switch mode {
	case ModeOptimize:
		return runOptimizeSession
	default:
		return runScreenSession
	}
}

func runSession(currentSession Session, workerConfig *WorkerConfig) error {
	return pipelineForMode(currentSession.Mode)(currentSession, workerConfig)
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	//    to consume message on the queue
	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		log.Fatal("error dialling rabbitmq: " + err.Error())
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error connecting to rabbitmq channel: " + err.Error())
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		"sessions", // queue name
		true,       // durable (survives broker restarts)
		false,      // auto-delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		"sessions", // queue name
		"",         // consumer tag
		true,       // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq message: " + err.Error())
	}

	for msg := range msgs {
		session := Session{}
		err = json.Unmarshal(msg.Body, &session)
		if err != nil {
			log.Printf("error unmarshalling message body. err: %v", err)
			markSessionFailed(workerConfig, session)
			continue
		}
		log.Printf("Worker %d processing session. session_id: %s mode: %s", id+1, session.ID, session.Mode)

		err := publishSessionUpdate(workerConfig.RabbitConn, session.ID.String(),
			statusUpdate(session.ID.String(), "processing", "analysis started"))
		if err != nil {
			log.Println("failed to publish update:", err)
		}
		workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
			Status: "processing",
			ID:     session.ID,
		})

		err = runSession(session, workerConfig)
		if err != nil {
			log.Printf("error running session_id: %v. err: %v", session.ID, err)
			markSessionFailed(workerConfig, session)
			continue
		}

		workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
			Status: "completed",
			ID:     session.ID,
		})
		err = publishSessionUpdate(workerConfig.RabbitConn, session.ID.String(),
			statusUpdate(session.ID.String(), "completed", "analysis completed"))
		if err != nil {
			log.Println("failed to publish update:", err)
		}
	}

}

func markSessionFailed(workerConfig *WorkerConfig, session Session) {
	workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
		Status: "failed",
		ID:     session.ID,
	})
	err := publishSessionUpdate(workerConfig.RabbitConn, session.ID.String(),
		statusUpdate(session.ID.String(), "failed", "analysis failed"))
	if err != nil {
		log.Println("failed to publish update:", err)
	}
}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		log.Println("worker id ", i+1, "started")
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish

}
