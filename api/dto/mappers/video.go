// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Translates extraction results and errors into response envelopes

package mappers

import (
	"net/http"

	"tiktok-downloader-api/api/dto/responses"
	"tiktok-downloader-api/core/domain"
	"tiktok-downloader-api/core/errors"
)

// ToSuccessResponse converts an ExtractionResult into the 200 envelope
func ToSuccessResponse(result *domain.ExtractionResult) responses.SuccessResponse {
	resp := responses.SuccessResponse{
		Status: true,
		Code:   http.StatusOK,
		Data: responses.VideoData{
			Source: domain.SourceTikTok,
		},
	}
	if result == nil {
		return resp
	}

	resp.Author.Name = result.AuthorName
	resp.Data.ID = result.ID
	resp.Data.Title = result.Title
	resp.Data.Thumbnail = result.Thumbnail
	resp.Data.Video = result.VideoURL
	resp.Data.Music = result.MusicURL
	return resp
}

// ToErrorResponse classifies err and returns the envelope for it
func ToErrorResponse(err error) responses.ErrorResponse {
	if validationErr, ok := errors.AsValidation(err); ok {
		return responses.NewErrorResponse(http.StatusBadRequest, validationErr.Message)
	}

	if errors.IsNotFound(err) {
		return responses.NewErrorResponse(http.StatusNotFound, responses.MessageNotFound)
	}

	return responses.NewInternalErrorResponse(err)
}
