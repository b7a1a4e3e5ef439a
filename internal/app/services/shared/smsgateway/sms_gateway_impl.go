package smsgateway

import (
	"bytes"
	"context"
	"net/http"
	"postcare-service/internal/app/config"
	"postcare-service/internal/pkg/constvars"
	"postcare-service/internal/pkg/dto/requests"
	"postcare-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type smsGatewayService struct {
	BaseUrl string
	Client  *http.Client
	Limiter *rate.Limiter
	Log     *zap.Logger
}

func NewSMSGatewayService(internalConfig *config.InternalConfig, logger *zap.Logger) SMSGatewayService {
	rps := internalConfig.SMSGateway.MaxRequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &smsGatewayService{
		BaseUrl: internalConfig.SMSGateway.BaseUrl,
		Client: &http.Client{
			Timeout: time.Duration(internalConfig.SMSGateway.TimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Limit(rps), rps),
		Log:     logger,
	}
}

// Send posts the message to the delivery service. Errors are returned to the
// caller so delivery failures can be recorded without losing the message.
func (s *smsGatewayService) Send(ctx context.Context, phoneNumber, message string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := s.Limiter.Wait(ctx); err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}

	body, err := json.Marshal(&requests.GatewaySend{
		To:      phoneNumber,
		Message: message,
	})
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.BaseUrl+"/send_sms", bytes.NewReader(body))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	s.Log.Info("smsGatewayService.Send posting message",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneNumberKey, phoneNumber),
	)

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Log.Error("smsGatewayService.Send request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		s.Log.Error("smsGatewayService.Send rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("status_code", resp.StatusCode),
		)
		return exceptions.ErrSMSGatewayRejected(nil, resp.StatusCode)
	}

	return nil
}
