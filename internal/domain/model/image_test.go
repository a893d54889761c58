package model_test

import (
	"errors"
	"testing"

	model "github.com/okian/imagecatalog/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestImageValidate(t *testing.T) {
	convey.Convey("Given an Image", t, func() {
		convey.Convey("When every field is valid", func() {
			img := model.Image{ID: 1, Name: "sample1.jpg", URL: "https://example.com/sample1.jpg"}

			convey.Convey("Then validation should pass", func() {
				convey.So(img.Validate(), convey.ShouldBeNil)
			})
		})

		convey.Convey("When the name is blank", func() {
			img := model.Image{ID: 2, Name: "  ", URL: "https://example.com/a.jpg"}

			convey.Convey("Then validation should report an empty name", func() {
				err := img.Validate()
				convey.So(errors.Is(err, model.ErrEmptyName), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "image 2")
			})
		})

		convey.Convey("When the url is relative", func() {
			img := model.Image{ID: 3, Name: "a.jpg", URL: "/images/a.jpg"}

			convey.Convey("Then validation should report an invalid url", func() {
				convey.So(errors.Is(img.Validate(), model.ErrInvalidURL), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the url has a scheme but no host", func() {
			img := model.Image{ID: 4, Name: "a.jpg", URL: "https:///a.jpg"}

			convey.Convey("Then validation should fail", func() {
				convey.So(errors.Is(img.Validate(), model.ErrInvalidURL), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the url is empty", func() {
			img := model.Image{ID: 5, Name: "a.jpg"}

			convey.Convey("Then validation should fail", func() {
				convey.So(errors.Is(img.Validate(), model.ErrInvalidURL), convey.ShouldBeTrue)
			})
		})
	})
}
