package api

import "titlebot/log"

var logger = log.Named("api")
