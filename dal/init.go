package dal

import (
	"VidTube.com/dal/db"
)

func Init() {
	db.Init()
}
