package mocks

//go:generate mockgen -destination=./mock_book.go -package=mocks quotebook/internal/book BookSide,Iterator
