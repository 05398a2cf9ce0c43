package handler

import "github.com/facturation/backend/internal/interfaces/http/dto"

// listMeta normalizes page parameters the same way the application layer does
// so the metadata matches the page that was actually served.
func listMeta(page, pageSize int, total int64) dto.Meta {
	return dto.NewMeta(page, pageSize, total)
}
