package smsgateway

import (
	"context"
)

type SMSGatewayService interface {
	Send(ctx context.Context, phoneNumber, message string) error
}
