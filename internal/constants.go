package internal

const ApplicationName = "depmatch"
