// controllers/blog.go
package controllers

import (
	"errors"
	"net/http"
	"serenityspa-backend/config"
	"serenityspa-backend/models"
	"serenityspa-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateBlogInput struct {
	Title     string `json:"title" binding:"required"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content" binding:"required"`
	Category  string `json:"category"`
	ImageURL  string `json:"imageUrl"`
	Published *bool  `json:"published"`
}

type UpdateBlogInput struct {
	Title     *string `json:"title"`
	Excerpt   *string `json:"excerpt"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
	ImageURL  *string `json:"imageUrl"`
	Published *bool   `json:"published"`
}

// GetBlogs lists published posts for the public site.
func GetBlogs(c *gin.Context) {
	var posts []models.BlogPost
	if err := config.DB.Where("published = ?", true).
		Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetBlog retrieves a single post.
func GetBlog(c *gin.Context) {
	blogUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid blog ID format")
		return
	}

	var post models.BlogPost
	if err := config.DB.First(&post, "id = ?", blogUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Blog post not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetAllBlogs lists every post, drafts included, for the admin area.
func GetAllBlogs(c *gin.Context) {
	var posts []models.BlogPost
	if err := config.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreateBlog creates a post authored by the signed-in admin.
func CreateBlog(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input CreateBlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var author models.User
	if err := config.DB.First(&author, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	post := models.BlogPost{
		Title:      input.Title,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		Category:   input.Category,
		ImageURL:   input.ImageURL,
		AuthorID:   &author.ID,
		AuthorName: author.Name,
		Published:  true,
	}
	if input.Published != nil {
		post.Published = *input.Published
	}

	if err := config.DB.Create(&post).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create blog post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdateBlog updates an existing post.
func UpdateBlog(c *gin.Context) {
	blogUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid blog ID format")
		return
	}

	var input UpdateBlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var post models.BlogPost
	if err := config.DB.First(&post, "id = ?", blogUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Blog post not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Category != nil {
		post.Category = *input.Category
	}
	if input.ImageURL != nil {
		post.ImageURL = *input.ImageURL
	}
	if input.Published != nil {
		post.Published = *input.Published
	}

	if err := config.DB.Save(&post).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update blog post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeleteBlog soft deletes a post.
func DeleteBlog(c *gin.Context) {
	blogUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid blog ID format")
		return
	}

	result := config.DB.Where("id = ?", blogUUID).Delete(&models.BlogPost{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete blog post")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Blog post not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}

// UploadBlogImage stores a cover image in Cloudinary and returns its URL.
func UploadBlogImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Image file is required")
		return
	}

	url, err := utils.UploadImage(c.Request.Context(), file, "blog")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
