package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
)

type body struct {
	TaskID string `json:"task_id"`
}

func (q *implQueue) Enqueue(ctx context.Context, taskID string) error {
	data, err := json.Marshal(body{TaskID: taskID})
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	out, err := q.client.SendMessageWithContext(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(string(data)),
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	q.logger.Debug(ctx, "Enqueued task %s as message %s", taskID, aws.StringValue(out.MessageId))
	return nil
}

func (q *implQueue) ReceiveOne(ctx context.Context, waitSeconds int64) (*Message, error) {
	out, err := q.client.ReceiveMessageWithContext(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.queueURL),
		MaxNumberOfMessages: aws.Int64(1),
		WaitTimeSeconds:     aws.Int64(waitSeconds),
	})
	if err != nil {
		return nil, fmt.Errorf("receive message: %w", err)
	}
	if len(out.Messages) == 0 {
		return nil, nil
	}

	m := out.Messages[0]
	msg := &Message{Handle: aws.StringValue(m.ReceiptHandle)}

	taskID, err := decode(aws.StringValue(m.Body))
	if err != nil {
		return msg, fmt.Errorf("%w: message %s: %v", ErrMalformedMessage, aws.StringValue(m.MessageId), err)
	}
	msg.TaskID = taskID
	return msg, nil
}

func (q *implQueue) Acknowledge(ctx context.Context, handle string) error {
	_, err := q.client.DeleteMessageWithContext(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.queueURL),
		ReceiptHandle: aws.String(handle),
	})
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

func decode(raw string) (string, error) {
	var b body
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return "", err
	}
	if b.TaskID == "" {
		return "", fmt.Errorf("task_id is empty")
	}
	return b.TaskID, nil
}
