package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/190014uewroc/dAIet/models"
)

var sesClient *ses.Client

func init() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendPlanEmail mails a weekly plan as plain text, one block per day.
func SendPlanEmail(to string, days []models.DayPlan) error {
	var sb strings.Builder
	sb.WriteString("Your 7-day meal plan\n\n")
	for i, d := range days {
		sb.WriteString(fmt.Sprintf("Day %d\n", i+1))
		sb.WriteString(fmt.Sprintf("  Breakfast: %s (%.0f kcal)\n", d.Breakfast.Name, d.Breakfast.Kcal))
		sb.WriteString(fmt.Sprintf("  Lunch:     %s (%.0f kcal)\n", d.Lunch.Name, d.Lunch.Kcal))
		sb.WriteString(fmt.Sprintf("  Dinner:    %s (%.0f kcal)\n", d.Dinner.Name, d.Dinner.Kcal))
		sb.WriteString(fmt.Sprintf("  Total: %d kcal, cost %d\n\n", d.Total.Kcal, d.Total.Cost))
	}
	return sendEmail(to, "Your weekly meal plan", sb.String())
}
