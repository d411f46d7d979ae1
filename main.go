package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Rizqah/ATS-Prototype/internal/database"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
	"github.com/streadway/amqp"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

func main() {
	_ = godotenv.Load()
	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		log.Fatal("empty DB_URL in environment")
	}

	rabbitmqUrl := os.Getenv("RABBITMQ_URL")
	if rabbitmqUrl == "" {
		log.Fatal("empty RABBITMQ_URL in env")
	}

	db, err := sql.Open("postgres", dbUrl)
	if err != nil {
		log.Fatal("error opening db. err: ", err)
	}

	dbqueries := database.New(db)

	r2AccountId := os.Getenv("R2_ACCCOUNT_ID")
	if r2AccountId == "" {
		log.Fatal("empty R2_ACCCOUNT_ID in environment")
	}
	r2Bucket := os.Getenv("R2_BUCKET")
	if r2Bucket == "" {
		log.Fatal("empty R2_BUCKET in environment")
	}
	r2SecretKey := os.Getenv("R2_SECRET_KEY")
	if r2SecretKey == "" {
		log.Fatal("empty R2_SECRET_KEY in environment")
	}
	r2AccessKey := os.Getenv("R2_ACCESS_KEY")
	if r2AccessKey == "" {
		log.Fatal("empty R2_ACCESS_KEY in environment")
	}
	r2Config := R2Config{
		AccountID: r2AccountId,
		AccessKey: r2AccessKey,
		SecretKey: r2SecretKey,
		Bucket:    r2Bucket,
	}
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("error creating aws config", err)
	}

	googleApiKey := os.Getenv("GOOGLE_API_KEY")
	if googleApiKey == "" {
		log.Fatal("empty GOOGLE_API_KEY in env")
	}

	// shared genai client for embeddings and text generation
	genaiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: googleApiKey,
	})
	if err != nil {
		log.Fatalf("failed to create genai client: %v", err)
	}

	// create the analyzer agent and its runner
	agentName := "resume analyzer"
	analyzer, err := GetAgent(googleApiKey, agentName)
	if err != nil {
		log.Fatalf("failed to create agent: %v", err)
	}

	inMemoryService := session.InMemoryService()

	r, err := runner.New(runner.Config{
		AppName:        analyzer.Name(),
		Agent:          analyzer,
		SessionService: inMemoryService,
	})
	if err != nil {
		log.Fatalf("failed to create runner: %v", err)
	}
	conn, err := amqp.Dial(rabbitmqUrl)
	if err != nil {
		log.Fatalf("error connecting to RabbitMQ. err:  %v", err)
	}

	numWorkers := 3
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			log.Fatalf("invalid WORKER_COUNT %q", v)
		}
		numWorkers = n
	}

	workerConfig := WorkerConfig{
		AgentName:           agentName,
		AgentRunner:         r,
		AgentSessionService: inMemoryService,
		DB:                  dbqueries,
		Embedder:            NewGeminiEmbedder(genaiClient),
		Generator:           NewGeminiGenerator(genaiClient),
		R2:                  &r2Config,
		AwsConfig:           &awsConfig,
		RABBITMQUrl:         rabbitmqUrl,
		RabbitConn:          conn,
	}

	fmt.Printf("Starting %d workers consumer pool \n", numWorkers)
	workerConfig.StartConsumerWorkerPool(numWorkers)
}
