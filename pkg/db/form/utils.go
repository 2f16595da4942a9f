package form

func getTotalPages(totalCount int64, limit int64) int64 {
	if limit == 0 {
		return 0
	}
	return (totalCount + limit - 1) / limit
}

func prepPaginationInfos(totalCount int64, page int64, limit int64) *PaginationInfos {
	if page < 1 {
		page = 1
	}
	totalPages := getTotalPages(totalCount, limit)
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	return &PaginationInfos{
		TotalCount:  totalCount,
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    limit,
	}
}
