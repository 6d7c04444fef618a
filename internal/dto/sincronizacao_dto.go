package dto

// ImportarRequest is the document pushed by the offline client:
// {collection_name: [row, …]} plus a client timestamp. Rows are upserted by
// their "id" field under the authenticated user's collection prefix.
type ImportarRequest struct {
	Colecoes  map[string][]map[string]interface{} `json:"colecoes" validate:"required"`
	Timestamp string                              `json:"timestamp" validate:"required"`
}

type ImportarResponse struct {
	Inseridos   int `json:"inseridos"`
	Atualizados int `json:"atualizados"`
	Ignorados   int `json:"ignorados"`
}

type ExportarRequest struct {
	Colecoes []string `json:"colecoes" validate:"required,min=1"`
}

type ExportarResponse struct {
	Colecoes  map[string][]map[string]interface{} `json:"colecoes"`
	Timestamp string                              `json:"timestamp"`
	UsuarioID string                              `json:"usuario_id"`
}
