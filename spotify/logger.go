package spotify

import "titlebot/log"

var logger = log.Named("spotify")
