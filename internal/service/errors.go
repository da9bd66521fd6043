package service

import "errors"

var (
	ErrUnknownCourse = errors.New("unknown course")
	ErrNoCourses     = errors.New("no course codes given")
)
