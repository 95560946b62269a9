package handlers

import (
	"net/http"
	"strconv"

	"investment-tracker/config"
	"investment-tracker/database"
	"investment-tracker/models"

	"github.com/gin-gonic/gin"
)

// GetUsers lists users, optionally filtered by email and/or username, with
// skip/limit pagination. Count covers the filtered set before pagination.
func GetUsers(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skip value."})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit value."})
		return
	}

	users, count, err := database.ListUsers(config.DB, c.Query("email"), c.Query("username"), skip, limit)
	if err != nil {
		databaseError(c, err)
		return
	}

	data := make([]models.UserPublic, 0, len(users))
	for i := range users {
		data = append(data, users[i].Public())
	}
	c.JSON(http.StatusOK, models.UsersPublic{Data: data, Count: count})
}

// CreateUser registers a new user after checking both uniqueness constraints.
func CreateUser(c *gin.Context) {
	var input models.UserCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := database.GetUserByEmail(config.DB, input.Email)
	if err != nil {
		databaseError(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The user with this email already exists in the system."})
		return
	}

	existing, err = database.GetUserByUsername(config.DB, input.Username)
	if err != nil {
		databaseError(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The user with this username already exists in the system."})
		return
	}

	user, err := database.CreateUser(config.DB, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user.Public())
}

// GetUser looks a single user up by username or email query parameter. When
// both are supplied they must belong to the same user.
func GetUser(c *gin.Context) {
	username := c.Query("username")
	email := c.Query("email")
	if username == "" && email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No username or email address provided to get user."})
		return
	}

	var user *models.User
	var err error
	if email != "" {
		user, err = database.GetUserByEmail(config.DB, email)
		if err != nil {
			databaseError(c, err)
			return
		}
		if user != nil && username != "" && user.Username != username {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username provided doesn't match username for email provided."})
			return
		}
	} else {
		user, err = database.GetUserByUsername(config.DB, username)
		if err != nil {
			databaseError(c, err)
			return
		}
	}

	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No user exists with these details."})
		return
	}
	c.JSON(http.StatusOK, user.Public())
}

func GetUserByID(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}
	c.JSON(http.StatusOK, user.Public())
}

// UpdateUser patches the username and/or password. At least one field must be
// supplied.
func UpdateUser(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}

	var input models.UserUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Username == nil && input.Password == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No username or password provided to update user."})
		return
	}

	if input.Username != nil && *input.Username != user.Username {
		existing, err := database.GetUserByUsername(config.DB, *input.Username)
		if err != nil {
			databaseError(c, err)
			return
		}
		if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The user with this username already exists in the system."})
			return
		}
	}

	if err := database.UpdateUser(config.DB, user, input); err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Public())
}

// DeleteUser removes the user and, explicitly at this layer, everything the
// user owns: orders, the portfolio with its assets and trades, and the summary.
func DeleteUser(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}

	if _, err := database.DeleteOrdersByUser(config.DB, user.ID); err != nil {
		databaseError(c, err)
		return
	}

	portfolio, err := database.GetPortfolioByUser(config.DB, user.ID)
	if err != nil {
		databaseError(c, err)
		return
	}
	if portfolio != nil {
		if err := database.DeletePortfolio(config.DB, portfolio); err != nil {
			databaseError(c, err)
			return
		}
	}

	summary, err := database.GetSummaryByUser(config.DB, user.ID)
	if err != nil {
		databaseError(c, err)
		return
	}
	if summary != nil {
		if err := database.DeleteSummary(config.DB, summary); err != nil {
			databaseError(c, err)
			return
		}
	}

	if err := database.DeleteUser(config.DB, user); err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Public())
}
