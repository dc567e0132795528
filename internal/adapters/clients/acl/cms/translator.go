package cms

import (
	"time"

	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
)

// ToDomainPage converts a CMS PageDTO to a domain Page.
func ToDomainPage(dto *PageDTO) page.Page {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, dto.UpdatedAt)

	return page.Page{
		ID:          dto.ID,
		Title:       dto.Title,
		Slug:        dto.Slug,
		TemplateKey: dto.Template,
		ParentID:    dto.Parent,
		SortOrder:   dto.Position,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// ToDomainPageList converts a CMS PageListResponseDTO to domain pages.
func ToDomainPageList(dto PageListResponseDTO) []page.Page {
	pages := make([]page.Page, len(dto.Pages))
	for i := range dto.Pages {
		pages[i] = ToDomainPage(&dto.Pages[i])
	}
	return pages
}

// ToWritePageRequest converts a domain Page to a create or update body.
func ToWritePageRequest(p *page.Page, claimUnique bool) WritePageRequestDTO {
	return WritePageRequestDTO{
		Title:       p.Title,
		Slug:        p.Slug,
		Template:    p.TemplateKey,
		Parent:      p.ParentID,
		ClaimUnique: claimUnique,
	}
}

// ToMoveRequest builds the body of a move call.
func ToMoveRequest(targetID int64, pos page.Position) MoveRequestDTO {
	return MoveRequestDTO{Target: targetID, Position: pos.String()}
}
