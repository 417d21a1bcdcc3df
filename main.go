package main

import (
	"log"

	"github.com/Xiorelia/waitlist-service/internal/handlers"
	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	log.Println("Starting Lambda...")
	lambda.Start(handlers.HandleWaitlistEvent)
}
