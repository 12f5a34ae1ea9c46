package cache

import "github.com/goodnatureofminers/burnchart-backend/internal/burn/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveMerge(resolution model.Resolution, err error, points int, cursor uint64)
	}
)
