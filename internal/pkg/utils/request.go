package utils

import (
	"net/http"
	"postcare-service/internal/pkg/constvars"
	"postcare-service/internal/pkg/dto/requests"
	"strconv"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("limit")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = constvars.DefaultPageSize
	}
	if pageSize > constvars.MaxPageSize {
		pageSize = constvars.MaxPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func BuildListMessagesRequest(r *http.Request) *requests.ListMessages {
	pagination := BuildPaginationRequest(r)
	query := r.URL.Query()

	sortBy := query.Get("sortBy")
	if sortBy == "" {
		sortBy = constvars.MessageSortFieldTimestamp
	}
	sortOrder := query.Get("sortOrder")
	if sortOrder != constvars.MessageSortOrderAscending {
		sortOrder = constvars.MessageSortOrderDescending
	}

	return &requests.ListMessages{
		Status:    query.Get("status"),
		Category:  query.Get("type"),
		PatientID: query.Get("patientId"),
		Search:    query.Get("search"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
}
