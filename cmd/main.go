package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"generate-webstory-service/application/services"
	"generate-webstory-service/config"
	"generate-webstory-service/infrastructure/adapters"
	"generate-webstory-service/infrastructure/gin_interface/controllers"
	"generate-webstory-service/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, relying on the environment")
	}

	cvConfig, err := config.GetCvConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get cv config")
	}

	arkConfig, err := config.GetArkConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get ark config")
	}

	storageConfig, err := config.GetStorageConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get storage config")
	}

	metadataConfig, err := config.GetMetadataConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get metadata config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
		Config:            aws.Config{Region: aws.String(storageConfig.Region)},
	}))

	// The object store is S3-compatible but lives behind its own endpoint;
	// DynamoDB stays on the session defaults.
	s3Client := s3.New(sess, aws.NewConfig().WithEndpoint("https://"+storageConfig.Endpoint))
	dynamoClient := dynamodb.New(sess)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)
	requestSigner := adapters.NewRequestSigner(cvConfig.ApiSecret)

	summarizer := adapters.NewArkSummarizer(contentFetcher, arkConfig, zeroLogger)
	promptEnhancer := adapters.NewArkPromptEnhancer(contentFetcher, arkConfig, zeroLogger)
	imageSynthesizer := adapters.NewCvImageSynthesizer(contentFetcher, cvConfig, requestSigner, zeroLogger)

	storyStore := adapters.NewS3StoryStore(s3Client, storageConfig, zeroLogger)
	storyCache := adapters.NewDynamoStoryCache(zeroLogger, dynamoClient, metadataConfig)

	slideBuilder := services.NewSlideBuilder(zeroLogger, workerPool)
	slideEnhancer := services.NewSlideEnhancer(zeroLogger, promptEnhancer, imageSynthesizer, workerPool)
	storyAssembler := services.NewStoryAssembler()

	webstoryPipeline := services.NewWebstoryPipeline(zeroLogger, workerPool, summarizer, slideBuilder,
		slideEnhancer, storyAssembler, storyStore, storyCache, storageConfig.KeyPrefix)

	webstoryController := controllers.NewWebstoryController(zeroLogger, webstoryPipeline)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.RequestLogger(zeroLogger))

	webstoryController.RegisterRoutes(router)

	if err := router.Run(":8080"); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
