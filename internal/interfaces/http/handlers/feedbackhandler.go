package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/application/feedback/usecases"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
	"github.com/linkdesk-io/linkdesk/internal/shared/utils"
)

type FeedbackHandler struct {
	createCampaignUC   *usecases.CreateCampaignUseCase
	listCampaignsUC    *usecases.ListCampaignsUseCase
	addQuestionUC      *usecases.AddQuestionUseCase
	listQuestionsUC    *usecases.ListQuestionsUseCase
	generateRequestsUC *usecases.GenerateRequestsUseCase
	submitUC           *usecases.SubmitFeedbackUseCase
	listMineUC         *usecases.ListMyFeedbackUseCase
	logger             logger.Interface
}

func NewFeedbackHandler(
	createCampaignUC *usecases.CreateCampaignUseCase,
	listCampaignsUC *usecases.ListCampaignsUseCase,
	addQuestionUC *usecases.AddQuestionUseCase,
	listQuestionsUC *usecases.ListQuestionsUseCase,
	generateRequestsUC *usecases.GenerateRequestsUseCase,
	submitUC *usecases.SubmitFeedbackUseCase,
	listMineUC *usecases.ListMyFeedbackUseCase,
	logger logger.Interface,
) *FeedbackHandler {
	return &FeedbackHandler{
		createCampaignUC:   createCampaignUC,
		listCampaignsUC:    listCampaignsUC,
		addQuestionUC:      addQuestionUC,
		listQuestionsUC:    listQuestionsUC,
		generateRequestsUC: generateRequestsUC,
		submitUC:           submitUC,
		listMineUC:         listMineUC,
		logger:             logger,
	}
}

type createCampaignRequest struct {
	Name       string `json:"name" binding:"required"`
	TargetRole string `json:"target_role"`
}

// CreateCampaign handles POST /feedback/campaigns
func (h *FeedbackHandler) CreateCampaign(c *gin.Context) {
	var req createCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createCampaignUC.Execute(c.Request.Context(), usecases.CreateCampaignCommand{
		Actor:      middleware.ActorFromContext(c),
		Name:       req.Name,
		TargetRole: req.TargetRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Campaign created successfully")
}

// ListCampaigns handles GET /feedback/campaigns
func (h *FeedbackHandler) ListCampaigns(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listCampaignsUC.Execute(c.Request.Context(), usecases.ListCampaignsQuery{
		Actor:      middleware.ActorFromContext(c),
		ActiveOnly: c.Query("active") == "true",
		Offset:     p.Offset(),
		Limit:      p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Campaigns, result.Total, p.Page, p.PageSize)
}

type addQuestionRequest struct {
	Text     string `json:"text" binding:"required"`
	Kind     string `json:"kind" binding:"required"`
	Position int    `json:"position"`
}

// AddQuestion handles POST /feedback/campaigns/:id/questions
func (h *FeedbackHandler) AddQuestion(c *gin.Context) {
	campaignID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req addQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.addQuestionUC.Execute(c.Request.Context(), usecases.AddQuestionCommand{
		Actor:      middleware.ActorFromContext(c),
		CampaignID: campaignID,
		Text:       req.Text,
		Kind:       req.Kind,
		Position:   req.Position,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Question added successfully")
}

// ListQuestions handles GET /feedback/campaigns/:id/questions
func (h *FeedbackHandler) ListQuestions(c *gin.Context) {
	campaignID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listQuestionsUC.Execute(c.Request.Context(), usecases.ListQuestionsQuery{
		Actor:      middleware.ActorFromContext(c),
		CampaignID: campaignID,
		ActiveOnly: c.Query("active") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Questions)
}

// GenerateRequests handles POST /feedback/campaigns/:id/generate
func (h *FeedbackHandler) GenerateRequests(c *gin.Context) {
	campaignID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.generateRequestsUC.Execute(c.Request.Context(), usecases.GenerateRequestsCommand{
		Actor:      middleware.ActorFromContext(c),
		CampaignID: campaignID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback requests generated", result)
}

type submitFeedbackRequest struct {
	Answers []submitAnswerRequest `json:"answers" binding:"required"`
}

type submitAnswerRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Rating     *int   `json:"rating"`
	Text       string `json:"text"`
}

// SubmitFeedback handles POST /feedback/:id/submit
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	feedbackID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req submitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	answers := make([]usecases.SubmitAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, usecases.SubmitAnswer{
			QuestionID: a.QuestionID,
			Rating:     a.Rating,
			Text:       a.Text,
		})
	}

	result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitFeedbackCommand{
		Actor:      middleware.ActorFromContext(c),
		FeedbackID: feedbackID,
		Answers:    answers,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback submitted successfully", result)
}

// ListMyFeedback handles GET /feedback/mine
func (h *FeedbackHandler) ListMyFeedback(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listMineUC.Execute(c.Request.Context(), usecases.ListMyFeedbackQuery{
		Actor:       middleware.ActorFromContext(c),
		PendingOnly: c.Query("pending") == "true",
		Offset:      p.Offset(),
		Limit:       p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Feedbacks, result.Total, p.Page, p.PageSize)
}
