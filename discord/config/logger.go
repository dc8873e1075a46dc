package config

import "titlebot/log"

var logger = log.Named("discord.config")
