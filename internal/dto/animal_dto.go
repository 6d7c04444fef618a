package dto

import "github.com/shopspring/decimal"

type CriarAnimalRequest struct {
	Identificacao  string  `json:"identificacao" validate:"required"`
	Brinco         *string `json:"brinco"`
	Tatuagem       *string `json:"tatuagem"`
	Nome           *string `json:"nome"`
	Categoria      string  `json:"categoria" validate:"required"`
	Sexo           string  `json:"sexo" validate:"required"`
	Raca           string  `json:"raca"`
	Origem         string  `json:"origem"`
	DataNascimento string  `json:"data_nascimento" validate:"required"` // YYYY-MM-DD
}

type AtualizarAnimalRequest struct {
	Brinco    *string `json:"brinco"`
	Tatuagem  *string `json:"tatuagem"`
	Nome      *string `json:"nome"`
	Categoria string  `json:"categoria"`
	Raca      string  `json:"raca"`
	Origem    string  `json:"origem"`
}

type AnimalResponse struct {
	ID             string  `json:"id"`
	Identificacao  string  `json:"identificacao"`
	Brinco         *string `json:"brinco,omitempty"`
	Tatuagem       *string `json:"tatuagem,omitempty"`
	Nome           *string `json:"nome,omitempty"`
	Categoria      string  `json:"categoria"`
	Sexo           string  `json:"sexo"`
	Raca           string  `json:"raca"`
	Origem         string  `json:"origem"`
	DataNascimento string  `json:"data_nascimento"`
	DataRegistro   string  `json:"data_registro"`
	Status         string  `json:"status"`
}

type AnimalFilter struct {
	Categoria     string `form:"categoria"`
	Sexo          string `form:"sexo"`
	Identificacao string `form:"identificacao"`
	Status        string `form:"status"` // Removido | all | default Ativo
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

type AnimalListResponse struct {
	Data  []AnimalResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

type RegistrarPesoRequest struct {
	AnimalID string          `json:"animal_id" validate:"required"`
	Data     string          `json:"data" validate:"required"`
	PesoKg   decimal.Decimal `json:"peso_kg" validate:"required,gt=0"`
}
