package discord

import "titlebot/log"

var logger = log.Named("discord")
