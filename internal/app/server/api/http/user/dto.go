package user

import "gestorfichas/internal/domain/user"

type loginInput struct {
	Body credentialsRequest
}

type credentialsRequest struct {
	Username string `json:"username" minLength:"1" doc:"Account username"`
	Password string `json:"password" minLength:"1" doc:"Account password"`
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token  string           `json:"token,omitempty"`
	User   *user.PublicUser `json:"user,omitempty"`
	Status string           `json:"status"`
	Error  string           `json:"error,omitempty"`
}

type logoutInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token of the session to close"`
}

type meInput struct{}

type meOutput struct {
	Body MeResponse
}

type MeResponse struct {
	User user.PublicUser `json:"user"`
}

type changePasswordInput struct {
	Body changePasswordRequest
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" minLength:"1" doc:"Password in use"`
	NewPassword     string `json:"new_password" minLength:"1" doc:"Replacement password"`
}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Users []user.PublicUser `json:"users"`
	Total int               `json:"total"`
}

type registerInput struct {
	Body registerRequest
}

type registerRequest struct {
	Username string `json:"username" minLength:"1" doc:"New account username"`
	Password string `json:"password" minLength:"1" doc:"New account password"`
	Role     string `json:"role" enum:"admin,editor" doc:"Account role"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	User   *user.PublicUser `json:"user,omitempty"`
	Status string           `json:"status"`
	Error  string           `json:"error,omitempty"`
}

type usernameInput struct {
	Username string `path:"username" doc:"Target account"`
}

type changeRoleInput struct {
	Username string `path:"username" doc:"Target account"`
	Body     changeRoleRequest
}

type changeRoleRequest struct {
	Role string `json:"role" enum:"admin,editor" doc:"New role"`
}

type setPasswordInput struct {
	Username string `path:"username" doc:"Target account"`
	Body     setPasswordRequest
}

type setPasswordRequest struct {
	NewPassword string `json:"new_password" minLength:"1" doc:"Replacement password"`
}

type statusOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
