// Package server provides Connect RPC handlers for the grading service.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"github.com/at-ishikawa/mathgrade/internal/answer"
	"github.com/at-ishikawa/mathgrade/internal/latex"
	"github.com/at-ishikawa/mathgrade/internal/linear"
	"github.com/at-ishikawa/mathgrade/internal/solve"
	"github.com/at-ishikawa/mathgrade/internal/validation"
)

// SolveSubmitter grades and records a learner's attempt at a stored problem.
type SolveSubmitter interface {
	Submit(ctx context.Context, userID, problemID int64, userInput string) (solve.Result, error)
}

// GradingHandler implements the grading service procedures.
type GradingHandler struct {
	solves    SolveSubmitter
	validator *linear.Validator

	validate *validator.Validate
	trans    ut.Translator
}

// NewGradingHandler creates a new GradingHandler. solves may be nil when no
// database is configured; SubmitSolve then fails with CodeUnimplemented.
func NewGradingHandler(solves SolveSubmitter) (*GradingHandler, error) {
	validate, trans, err := validation.New("json")
	if err != nil {
		return nil, fmt.Errorf("validation.New() > %w", err)
	}
	return &GradingHandler{
		solves:    solves,
		validator: linear.NewValidator(),
		validate:  validate,
		trans:     trans,
	}, nil
}

// VerifyAnswer reports whether the user's input matches the answer.
func (h *GradingHandler) VerifyAnswer(
	ctx context.Context,
	req *connect.Request[VerifyAnswerRequest],
) (*connect.Response[VerifyAnswerResponse], error) {
	return connect.NewResponse(&VerifyAnswerResponse{
		Correct: answer.Verify(req.Msg.UserInput, req.Msg.Answer),
	}), nil
}

// RenderLatex converts typed math into LaTeX for display.
func (h *GradingHandler) RenderLatex(
	ctx context.Context,
	req *connect.Request[RenderLatexRequest],
) (*connect.Response[RenderLatexResponse], error) {
	if err := h.validateRequest(req.Msg); err != nil {
		return nil, err
	}
	return connect.NewResponse(&RenderLatexResponse{
		Latex: latex.ASCIIToLatex(req.Msg.Input),
	}), nil
}

// ValidateEquation checks that a linear-equation problem's answer solves it.
func (h *GradingHandler) ValidateEquation(
	ctx context.Context,
	req *connect.Request[ValidateEquationRequest],
) (*connect.Response[ValidateEquationResponse], error) {
	if err := h.validateRequest(req.Msg); err != nil {
		return nil, err
	}
	result := h.validator.Validate(linear.Problem{
		Question:  req.Msg.Question,
		Question2: req.Msg.Question2,
		Answer:    req.Msg.Answer,
	}, req.Msg.UnitName)
	return connect.NewResponse(&ValidateEquationResponse{
		IsValid: result.IsValid,
		Reason:  result.Reason,
	}), nil
}

// SubmitSolve grades a learner's answer to a stored problem and records it.
func (h *GradingHandler) SubmitSolve(
	ctx context.Context,
	req *connect.Request[SubmitSolveRequest],
) (*connect.Response[SubmitSolveResponse], error) {
	if err := h.validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if h.solves == nil {
		return nil, connect.NewError(connect.CodeUnimplemented, errors.New("solve persistence is not configured"))
	}

	result, err := h.solves.Submit(ctx, req.Msg.UserID, req.Msg.ProblemID, req.Msg.UserInput)
	if err != nil {
		if errors.Is(err, solve.ErrProblemNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("problem %d not found", req.Msg.ProblemID))
		}
		slog.Default().Error("failed to submit solve",
			"user_id", req.Msg.UserID,
			"problem_id", req.Msg.ProblemID,
			"error", err)
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("submit solve: %w", err))
	}

	return connect.NewResponse(&SubmitSolveResponse{
		SolveID: result.SolveID,
		Correct: result.Correct,
	}), nil
}

func (h *GradingHandler) validateRequest(msg any) *connect.Error {
	err := h.validate.Struct(msg)
	if err == nil {
		return nil
	}

	connectErr := connect.NewError(connect.CodeInvalidArgument, err)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var fieldViolations []*errdetails.BadRequest_FieldViolation
		for _, fe := range validationErrors {
			fieldViolations = append(fieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       validation.FieldPath(fe),
				Description: fe.Translate(h.trans),
			})
		}
		if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
			FieldViolations: fieldViolations,
		}); detailErr == nil {
			connectErr.AddDetail(detail)
		}
	}
	return connectErr
}
