package server

type VerifyAnswerRequest struct {
	UserInput string `json:"user_input"`
	Answer    string `json:"answer"`
}

type VerifyAnswerResponse struct {
	Correct bool `json:"correct"`
}

type RenderLatexRequest struct {
	Input string `json:"input" validate:"required"`
}

type RenderLatexResponse struct {
	Latex string `json:"latex"`
}

type ValidateEquationRequest struct {
	Question  string `json:"question" validate:"required"`
	Question2 string `json:"question2,omitempty"`
	Answer    string `json:"answer" validate:"required"`
	UnitName  string `json:"unit_name,omitempty"`
}

type ValidateEquationResponse struct {
	IsValid bool   `json:"is_valid"`
	Reason  string `json:"reason,omitempty"`
}

type SubmitSolveRequest struct {
	UserID    int64  `json:"user_id" validate:"gt=0"`
	ProblemID int64  `json:"problem_id" validate:"gt=0"`
	UserInput string `json:"user_input"`
}

type SubmitSolveResponse struct {
	SolveID int64 `json:"solve_id"`
	Correct bool  `json:"correct"`
}
