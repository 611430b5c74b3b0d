package server

import (
	"net/http"

	"connectrpc.com/connect"
)

const (
	// GradingServiceName is the fully-qualified name of the grading service.
	GradingServiceName = "mathgrade.v1.GradingService"

	VerifyAnswerProcedure     = "/" + GradingServiceName + "/VerifyAnswer"
	RenderLatexProcedure      = "/" + GradingServiceName + "/RenderLatex"
	ValidateEquationProcedure = "/" + GradingServiceName + "/ValidateEquation"
	SubmitSolveProcedure      = "/" + GradingServiceName + "/SubmitSolve"
)

// NewGradingServiceHandler builds an HTTP handler for every procedure of the
// grading service and returns the path to mount it on.
func NewGradingServiceHandler(h *GradingHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(VerifyAnswerProcedure, connect.NewUnaryHandler(VerifyAnswerProcedure, h.VerifyAnswer, opts...))
	mux.Handle(RenderLatexProcedure, connect.NewUnaryHandler(RenderLatexProcedure, h.RenderLatex, opts...))
	mux.Handle(ValidateEquationProcedure, connect.NewUnaryHandler(ValidateEquationProcedure, h.ValidateEquation, opts...))
	mux.Handle(SubmitSolveProcedure, connect.NewUnaryHandler(SubmitSolveProcedure, h.SubmitSolve, opts...))
	return "/" + GradingServiceName + "/", mux
}

// ClientOptions returns the options a Connect client needs to call the grading service.
func ClientOptions() []connect.ClientOption {
	return []connect.ClientOption{connect.WithCodec(jsonCodec{})}
}
