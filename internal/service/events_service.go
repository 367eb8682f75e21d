package service

import (
	"cinema_reservation/model"
	errorHandler "cinema_reservation/pkg/error"
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const eventsExchange = "cinema.events"

type IEventsService interface {
	PublishReservationsPaid(username string, transactionId string, paidCount int64)
	PublishReviewCreated(review *model.Review)
	Close()
}

// EventsService fans domain events out over rabbitmq so the notification
// side of the stack can pick them up. When no rabbitmq url is configured
// the publisher stays disabled and every publish is a no-op.
type EventsService struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewEventsService(rabbitUrl string) (*EventsService, error) {
	if rabbitUrl == "" {
		return &EventsService{}, nil
	}

	conn, err := amqp.Dial(rabbitUrl)
	if err != nil {
		return nil, err
	}
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	err = channel.ExchangeDeclare(eventsExchange, "topic", true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &EventsService{
		conn:    conn,
		channel: channel,
	}, nil
}

//------------------------------------------
//------------------------------------------

type reservationsPaidEvent struct {
	Username      string `json:"username"`
	TransactionId string `json:"transactionId"`
	PaidCount     int64  `json:"paidCount"`
	PaidAt        string `json:"paidAt"`
}

type reviewCreatedEvent struct {
	ReviewId int64  `json:"reviewId"`
	MovieId  int64  `json:"movieId"`
	Username string `json:"username"`
	Rating   int    `json:"rating"`
}

func (e *EventsService) PublishReservationsPaid(username string, transactionId string, paidCount int64) {
	e.publish("reservation.paid", reservationsPaidEvent{
		Username:      username,
		TransactionId: transactionId,
		PaidCount:     paidCount,
		PaidAt:        time.Now().UTC().Format(time.RFC3339),
	})
}

func (e *EventsService) PublishReviewCreated(review *model.Review) {
	e.publish("review.created", reviewCreatedEvent{
		ReviewId: review.Id,
		MovieId:  review.MovieId,
		Username: review.Username,
		Rating:   review.Rating,
	})
}

func (e *EventsService) publish(routingKey string, payload interface{}) {
	if e.channel == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on marshaling %v event: %v", routingKey, err)
		errorHandler.SaveError(errorMessage, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = e.channel.PublishWithContext(ctx, eventsExchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		errorMessage := fmt.Sprintf("Error on publishing %v event: %v", routingKey, err)
		errorHandler.SaveError(errorMessage, err)
	}
}

func (e *EventsService) Close() {
	if e.channel != nil {
		_ = e.channel.Close()
	}
	if e.conn != nil {
		_ = e.conn.Close()
	}
}
