package utils

import (
	"log"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var RoleList = []string{"student", "instructor", "admin"}

var roleValidator validator.Func = func(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	for _, validRole := range RoleList {
		if role == validRole {
			return true
		}
	}
	return false
}

func InitVaildator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("role", roleValidator)
	} else {
		log.Fatalf("error register vaildatioon")
	}
}
