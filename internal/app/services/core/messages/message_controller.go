package messages

import (
	"context"
	"io"
	"net/http"
	"postcare-service/internal/pkg/constvars"
	"postcare-service/internal/pkg/dto/requests"
	"postcare-service/internal/pkg/exceptions"
	"postcare-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MessageController struct {
	Log            *zap.Logger
	MessageUsecase MessageUsecase
}

func NewMessageController(logger *zap.Logger, messageUsecase MessageUsecase) *MessageController {
	return &MessageController{
		Log:            logger,
		MessageUsecase: messageUsecase,
	}
}

func (ctrl *MessageController) ReceiveMessage(w http.ResponseWriter, r *http.Request) {
	request := new(requests.InboundMessage)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeInboundMessageRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MessageUsecase.ReceiveInbound(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MessageReceivedSuccess, result)
}

func (ctrl *MessageController) SendMessage(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SendMessage)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSendMessageRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.MessageUsecase.Send(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MessageSentSuccess, result)
}

func (ctrl *MessageController) GetMessages(w http.ResponseWriter, r *http.Request) {
	request := utils.BuildListMessagesRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, pagination, err := ctrl.MessageUsecase.List(ctx, request, r.URL.Path)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.MessagesFetchedSuccess, pagination, result)
}

func (ctrl *MessageController) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MessageUsecase.Statistics(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatisticsFetchedSuccess, result)
}

func (ctrl *MessageController) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.MessageUsecase.MarkRead(ctx, messageID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageMarkedReadSuccess, nil)
}

func (ctrl *MessageController) MarkMessagesRead(w http.ResponseWriter, r *http.Request) {
	// An empty body means "mark everything", so EOF is not an error here.
	request := new(requests.MarkMessagesRead)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil && err != io.EOF {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MessageUsecase.MarkManyRead(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessagesMarkedReadSuccess, result)
}
