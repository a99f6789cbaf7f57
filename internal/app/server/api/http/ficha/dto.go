package ficha

import "gestorfichas/internal/domain/ficha"

type listInput struct{}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Fichas []ficha.Ficha `json:"fichas"`
	Total  int           `json:"total"`
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Nombre string `json:"nombre" minLength:"1" doc:"Person name"`
	Edad   int    `json:"edad" minimum:"1" doc:"Age in years"`
	Ciudad string `json:"ciudad" minLength:"1" doc:"City of residence"`
}

type createOutput struct {
	Body CreateResponse
}

type CreateResponse struct {
	Ficha  ficha.Ficha `json:"ficha"`
	Status string      `json:"status"`
}

type searchInput struct {
	Term string `query:"term" doc:"Substring matched against nombre, case-insensitive"`
}

type searchOutput struct {
	Body SearchResponse
}

type SearchResponse struct {
	Fichas []ficha.Ficha `json:"fichas"`
	Total  int           `json:"total"`
}

type updateInput struct {
	ID   string `path:"id" doc:"Ficha identifier"`
	Body updateRequest
}

type updateRequest struct {
	Nombre *string `json:"nombre,omitempty" doc:"New name, omit to keep"`
	Edad   *int    `json:"edad,omitempty" doc:"New age, omit to keep"`
	Ciudad *string `json:"ciudad,omitempty" doc:"New city, omit to keep"`
}

type updateOutput struct {
	Body UpdateResponse
}

type UpdateResponse struct {
	Ficha  ficha.Ficha `json:"ficha"`
	Status string      `json:"status"`
}

type deleteInput struct {
	ID string `path:"id" doc:"Ficha identifier"`
}

type deleteOutput struct {
	Body DeleteResponse
}

type DeleteResponse struct {
	Ficha  ficha.Ficha `json:"ficha"`
	Status string      `json:"status"`
}
