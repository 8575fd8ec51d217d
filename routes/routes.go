package routes

import (
	"univo/controllers"
	"univo/db"
	"univo/services"

	"github.com/gin-gonic/gin"
)

// Setup wires every endpoint onto the router.
func Setup(router *gin.Engine, store *db.Store) {
	taskService := services.NewTaskService(store)
	suggestionService := services.NewSuggestionService(store)

	health := controllers.NewHealthController(store)
	users := controllers.NewUserController(store)
	courses := controllers.NewCourseController(store)
	tasks := controllers.NewTaskController(store, taskService)
	moods := controllers.NewMoodController(store)
	posts := controllers.NewPostController(store)
	suggestions := controllers.NewSuggestionController(suggestionService)
	leaderboard := controllers.NewLeaderboardController(store)

	router.GET("/test", health.TestConnection)

	router.POST("/users", users.CreateOrGetUser)
	router.GET("/users/:id", users.GetUser)

	router.POST("/courses", courses.CreateCourse)
	router.GET("/courses", courses.ListCourses)

	router.POST("/tasks", tasks.CreateTask)
	router.GET("/tasks", tasks.ListTasks)
	router.PATCH("/tasks/:id/complete", tasks.CompleteTask)

	router.POST("/moods", moods.CreateMood)

	router.GET("/flamo/suggest", suggestions.SuggestNext)

	router.POST("/posts", posts.CreatePost)
	router.GET("/posts", posts.ListPosts)
	router.POST("/posts/:id/reply", posts.AddReply)

	router.GET("/leaderboard", leaderboard.GetLeaderboard)
}
