package repository

import (
	"github.com/Faizanmoriani2/bignote/pkg/database"
)

type Repo struct {
	db database.Tx
}

func New(db database.Tx) *Repo {
	return &Repo{db: db}
}
