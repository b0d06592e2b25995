package handler

import (
	"github.com/taskforge/todo-system/internal/core/domain"
	"github.com/taskforge/todo-system/internal/core/ports"
)

// --- Request → Service input ---

func toUpdateUserInput(req patchUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		IsActive:    req.IsActive,
		IsSuperuser: req.IsSuperuser,
	}
}

// toFullUserInput normalizes a PUT payload: every field pointer is set,
// so unspecified optional fields reset to their defaults downstream.
func toFullUserInput(req putUserRequest) ports.UpdateUserInput {
	in := ports.UpdateUserInput{
		FullName:    &req.FullName,
		Email:       &req.Email,
		IsActive:    &req.IsActive,
		IsSuperuser: &req.IsSuperuser,
	}
	if req.Password != "" {
		in.Password = &req.Password
	}
	return in
}

func toTaskFields(req patchTaskRequest) ports.TaskFields {
	return ports.TaskFields{
		Title:       req.Title,
		Description: req.Description,
		IsDone:      req.IsDone,
	}
}

// toFullTaskFields normalizes a PUT payload into a fully-set field set.
func toFullTaskFields(req putTaskRequest) ports.TaskFields {
	return ports.TaskFields{
		Title:       &req.Title,
		Description: &req.Description,
		IsDone:      &req.IsDone,
	}
}

// --- Service result → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
	}
}

func toListUsersResponse(users []*domain.User) listUsersResponse {
	items := make([]userResponse, len(users))
	for i, u := range users {
		items[i] = toUserResponse(u)
	}
	return listUsersResponse{Data: items}
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsDone:      t.IsDone,
		OwnerID:     t.OwnerID,
	}
}

func toListTasksResponse(tasks []*domain.Task) listTasksResponse {
	items := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = toTaskResponse(t)
	}
	return listTasksResponse{Data: items}
}
